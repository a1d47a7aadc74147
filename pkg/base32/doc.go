// Package base32 implements Crockford Base32 for arbitrary byte sequences.
//
// It complements the fixed-width codec in pkg/ulid, which is specialized
// for the 26-character identifier form; this package handles any input
// length, with optional '=' padding to 8-character groups. Decoding is
// case-insensitive and accepts the Crockford substitutions (i/l -> 1,
// o -> 0).
package base32
