package vigenere_test

import (
	"fmt"

	"github.com/algoprose/classics/vigenere"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEncrypt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The example every cryptography course opens with: ATTACKATDAWN under
//	the keyword LEMON.
func ExampleEncrypt() {
	c, err := vigenere.Encrypt("ATTACKATDAWN", "LEMON")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p, err := vigenere.Decrypt(c, "LEMON")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c)
	fmt.Println(p)
	// Output:
	// LXFOPVEFRNHR
	// ATTACKATDAWN
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleROT13
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	ROT13 is its own inverse — applying it twice restores the text.
func ExampleROT13() {
	once := vigenere.ROT13("Hello, Gophers!")
	twice := vigenere.ROT13(once)
	fmt.Println(once)
	fmt.Println(twice)
	// Output:
	// Uryyb, Tbcuref!
	// Hello, Gophers!
}
