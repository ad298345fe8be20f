// Package base64 provides base64 encoding and decoding functions
// as defined in RFC 4648 Section 4, using the standard alphabet
// and "=" padding.
//
// Every 3 input bytes are regrouped into 4 symbols of 6 bits each,
// and each symbol is mapped through a fixed 64 character alphabet:
//   - 'A' to 'Z' for values 0 to 25
//   - 'a' to 'z' for values 26 to 51
//   - '0' to '9' for values 52 to 61
//   - '+' and '/' for values 62 and 63
//
// Encoded output is always a multiple of 4 characters long, and a
// trailing partial group is completed with one or two padding characters.
//
// Decoding is strict: input whose length is not a multiple of 4, and
// input containing a character outside of the alphabet (or a padding
// character anywhere but the end) is rejected with a typed error instead
// of producing partial output.
//
// Both directions operate on whole in-memory values and share no mutable
// state, so they are safe for concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
