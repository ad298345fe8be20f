package base64_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/draconiandeveloper/base64/pkg/base64"
)

// Example demonstrates a full encode and decode round trip
func Example() {
	encoded, err := base64.Encode([]byte("Test"))
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := base64.Decode(encoded)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(encoded)
	fmt.Println(string(decoded))
	// Output:
	// VGVzdA==
	// Test
}

// ExampleDecode_invalidCharacter demonstrates how malformed input is reported
func ExampleDecode_invalidCharacter() {
	_, err := base64.Decode("Zm9v!A==")

	var invalid *base64.ErrInvalidCharacter
	if errors.As(err, &invalid) {
		fmt.Printf("illegal %q at offset %d\n", invalid.Char, invalid.Offset)
	}
	fmt.Println(errors.Is(err, base64.ErrInvalidInput))
	// Output:
	// illegal '!' at offset 4
	// true
}

func ExampleEncodedLen() {
	for _, n := range []int{0, 1, 2, 3, 4} {
		fmt.Println(n, base64.EncodedLen(n))
	}
	// Output:
	// 0 0
	// 1 4
	// 2 4
	// 3 4
	// 4 8
}
