package seqbuf

import (
	"errors"
	"fmt"
	"os"
)

func ExampleBuffer() {
	b := New(DefaultCapacity)
	if err := b.Fill(10); err != nil {
		panic(err)
	}

	_, _ = b.WriteTo(os.Stdout)
	// Output:
	// 0
	// 1
	// 2
	// 3
	// 4
	// 5
	// 6
	// 7
	// 8
	// 9
}

func ExampleBuffer_Fill_outOfRange() {
	b := New(DefaultCapacity)
	err := b.Fill(11)
	fmt.Println(errors.Is(err, ErrRange))
	fmt.Println(err)
	// Output:
	// true
	// seqbuf: count 11 out of range [0, 10]
}
