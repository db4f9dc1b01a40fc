// Package diskmap builds and inspects the block image described by a disk map.
//
// A disk map is a string of decimal digits. Digits alternate between the length
// of a file and the length of the free space following it, starting with a file:
//
//	12345  ->  0..111....22222
//
// File runs are numbered in the order they appear, starting from 0. Free runs
// have no ID. A length of 0 is legal and contributes no blocks, so a "0" free run
// places two files next to each other.
//
// Decoding stops at the first byte that isn't a digit, which is usually the
// trailing newline of an input file. Anything decoded up to that point is kept
// as the full image; this is not treated as an error.

package diskmap
