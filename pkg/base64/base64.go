package base64

const maxInt = int(^uint(0) >> 1)

// fields holds the mask and shift of each 6-bit symbol within a 24-bit group,
// from most to least significant.
var fields = [4]struct {
	mask  uint32
	shift uint
}{
	{0xFC0000, 18},
	{0x3F000, 12},
	{0xFC0, 6},
	{0x3F, 0},
}

// EncodedLen returns the length in bytes of the base64 encoding
// of an input of n bytes, including padding.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// for an encoded input of n bytes. The actual length is smaller by one
// byte for every padding character present.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// checkEncodeLen guards the n*8 symbol count computed by EncodeToBytes.
func checkEncodeLen(n int) error {
	if n > maxInt/8 {
		return NewTooLargeError(n)
	}
	return nil
}

// Encode returns the base64 encoded string from the given input.
//
// An empty input encodes to an empty string.
func Encode(input []byte) (string, error) {
	dst, err := EncodeToBytes(input)
	if err != nil {
		return "", err
	}
	return string(dst), nil
}

// EncodeToBytes is like Encode, but returns the encoded form as a newly
// allocated byte slice owned by the caller.
func EncodeToBytes(input []byte) ([]byte, error) {
	n := len(input)
	if err := checkEncodeLen(n); err != nil {
		return nil, err
	}

	// Output positions at or past this many symbols are padding.
	symbols := (n*8 + 5) / 6

	dst := make([]byte, EncodedLen(n))
	for si, di := 0, 0; di < len(dst); si, di = si+3, di+4 {
		// Bytes past the end of the input read as zero.
		var buf uint32
		for k := 0; k < 3; k++ {
			buf <<= 8
			if si+k < n {
				buf |= uint32(input[si+k])
			}
		}

		for k, f := range fields {
			if di+k >= symbols {
				dst[di+k] = Padding
				continue
			}
			dst[di+k] = Alphabet[(buf&f.mask)>>f.shift]
		}
	}

	return dst, nil
}

// Decode returns the base64 decoded bytes from the given input.
//
// The input length must be a multiple of 4, and padding may only appear
// in the last two positions of the final group. Any violation returns an
// error and no output. An empty input decodes to an empty slice.
func Decode(input string) ([]byte, error) {
	return DecodeBytes([]byte(input))
}

// DecodeBytes is like Decode, but reads the encoded form from a byte slice.
func DecodeBytes(input []byte) ([]byte, error) {
	if len(input)%4 != 0 {
		return nil, NewMalformedLengthError(len(input))
	}

	dst := make([]byte, 0, DecodedLen(len(input)))
	for g := 0; g < len(input); g += 4 {
		last := g+4 == len(input)

		i1, err := lookup(input, g)
		if err != nil {
			return nil, err
		}
		i2, err := lookup(input, g+1)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(i1<<2|i2>>4))

		c3, c4 := input[g+2], input[g+3]
		if c3 == Padding {
			if !last {
				return nil, NewInvalidCharacterError(c3, g+2)
			}
			if c4 != Padding {
				return nil, NewInvalidCharacterError(c4, g+3)
			}
			break
		}
		i3, err := lookup(input, g+2)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte((i2&0xF)<<4|i3>>2))

		if c4 == Padding {
			if !last {
				return nil, NewInvalidCharacterError(c4, g+3)
			}
			break
		}
		i4, err := lookup(input, g+3)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte((i3&0x3)<<6|i4))
	}

	return dst, nil
}

func lookup(input []byte, offset int) (int, error) {
	c := input[offset]
	i, ok := Index(c)
	if !ok {
		return 0, NewInvalidCharacterError(c, offset)
	}
	return i, nil
}
