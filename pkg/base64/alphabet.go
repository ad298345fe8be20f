package base64

// Alphabet is the standard base64 alphabet, indexed by 6-bit symbol value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding completes the final group of an encoding whose input length
// is not a multiple of 3.
const Padding byte = '='

// Symbol returns the alphabet character for the given 6-bit value.
// It reports false if i is outside of [0, 63].
func Symbol(i int) (byte, bool) {
	if i < 0 || i >= len(Alphabet) {
		return 0, false
	}
	return Alphabet[i], true
}

// Index returns the 6-bit value of the given alphabet character.
// It reports false for any byte that is not part of the alphabet,
// including the padding character.
func Index(c byte) (int, bool) {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A'), true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 26, true
	case '0' <= c && c <= '9':
		return int(c-'0') + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	default:
		return 0, false
	}
}
