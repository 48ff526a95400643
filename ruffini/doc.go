// Package ruffini implements synthetic division (Ruffini's rule) for real
// polynomials, together with Horner evaluation and root deflation.
//
// 🚀 What is Ruffini's rule?
//
//	Dividing a polynomial P(x) by a linear binomial (x − c) with a single
//	row of multiply-adds. The same pass that produces the quotient Q(x)
//	leaves P(c) as the remainder, so evaluation, division and deflation
//	all share one O(n) loop.
//
// The fundamental identity, for every x:
//
//	P(x) = (x − c)·Q(x) + r,   with r = P(c)
//
// Coefficients are ordered descending by degree: {3, 0, -4, 1} means
// 3x³ − 4x + 1.
//
// ⚙️ Usage:
//
//	q, r, err := ruffini.Divide([]float64{1, -6, 11, -6}, 1)
//	// q = {1, -5, 6}, r = 0 → 1 is a root of x³-6x²+11x-6
//
// Performance: every operation is a single O(n) pass, O(n) memory for the
// quotient, O(1) otherwise.
package ruffini
