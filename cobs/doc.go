// Package cobs implements Consistent Overhead Byte Stuffing: a reversible
// transform that removes every 0x00 from a byte stream so that zero can be
// used as an unambiguous frame delimiter on serial links.
//
// 🚀 How COBS works:
//
//	The payload is cut at each zero byte into groups. Every group is
//	emitted as a code byte — the offset to the next zero, i.e. the group
//	length + 1 — followed by the group's non-zero bytes. A group of 254
//	non-zero bytes gets the maximum code 0xFF and implies no zero after
//	it. The encoded stream therefore contains no 0x00 at all, and the
//	overhead is exactly one byte per 254, plus one.
//
// Worked examples (hex):
//
//	[]            → [01]
//	[00]          → [01 01]
//	[11 22 00 33] → [03 11 22 02 33]
//	[11 22 33 44] → [05 11 22 33 44]
//
// Encode produces the stuffed form without a trailing delimiter; framing
// (appending 0x00 and scanning for it) is the caller's business.
//
// ⚙️ Usage:
//
//	enc := cobs.Encode(payload)
//	dec, err := cobs.Decode(enc)
//
// Performance: single pass, O(n) time; MaxEncodedLen(n) = n + n/254 + 1.
package cobs
