// Package vigenere implements the classical polyalphabetic Vigenère cipher,
// plus the Caesar shift and ROT13 special cases.
//
// 🚀 A two-minute history:
//
//	The Caesar cipher shifts every letter by a fixed amount — trivially
//	broken by trying all 26 shifts. Vigenère (16th century) cycles through
//	a keyword of shifts instead, defeating single-alphabet frequency
//	analysis; it held the nickname "le chiffre indéchiffrable" until
//	Kasiski's 1863 attack.
//
// Conventions, matching the usual textbook presentation:
//
//   - Only ASCII letters are transformed; digits, punctuation and spaces
//     pass through unchanged and do NOT advance the key.
//   - Case is preserved: "Attack" under key "LEMON" keeps its capital A.
//   - The key must be non-empty ASCII letters; its case is ignored.
//
// ⚙️ Usage:
//
//	c, err := vigenere.Encrypt("ATTACKATDAWN", "LEMON") // "LXFOPVEFRNHR"
//	p, err := vigenere.Decrypt(c, "LEMON")
//
//	shifted := vigenere.Caesar("Hello", 3)  // "Khoor"
//	spun := vigenere.ROT13("Why did the chicken...")
//
// Performance: O(n) time, O(n) memory for the transformed copy.
package vigenere
