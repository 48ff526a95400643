package ruffini_test

import (
	"fmt"

	"github.com/algoprose/classics/ruffini"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDivide
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Divide P(x) = x³ − 6x² + 11x − 6 by (x − 1).
//	Since 1 is a root, the remainder vanishes and the quotient is the
//	deflated quadratic x² − 5x + 6.
//
// Complexity: O(n) time, O(n) memory.
func ExampleDivide() {
	q, r, err := ruffini.Divide([]float64{1, -6, 11, -6}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("quotient=%v remainder=%v\n", q, r)
	// Output:
	// quotient=[1 -5 6] remainder=0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate P(x) = 2x³ + 3x − 1 at x = 2 via Horner's method.
//	The same value is what Divide would report as the remainder of P/(x−2).
func ExampleEvaluate() {
	v, err := ruffini.Evaluate([]float64{2, 0, 3, -1}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("P(2) =", v)
	// Output:
	// P(2) = 21
}
