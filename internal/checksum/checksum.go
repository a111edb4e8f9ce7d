package checksum

import (
	"errors"
	"fmt"
	"strconv"
)

// Length is the number of data digits in a sequence.
const Length = 9

// Modulus bounds every checksum to [0, Modulus-1].
const Modulus = 11

// ErrInvalidDigits indicates a sequence of the wrong length or with a value
// outside 0-9.
var ErrInvalidDigits = errors.New("invalid digit sequence")

// Digits holds the data digits of an ISBN-10 style identifier, without the
// check digit.
type Digits [Length]int

// Validate reports whether every position holds a decimal digit.
func (d Digits) Validate() error {
	for i, v := range d {
		if v < 0 || v > 9 {
			return fmt.Errorf("%w: position %d holds %d", ErrInvalidDigits, i+1, v)
		}
	}
	return nil
}

// String renders the sequence as nine ASCII digits.
func (d Digits) String() string {
	buf := make([]byte, 0, Length)
	for _, v := range d {
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// FromSlice copies values into a Digits, rejecting anything that is not
// exactly Length decimal digits.
func FromSlice(values []int) (Digits, error) {
	var d Digits
	if len(values) != Length {
		return d, fmt.Errorf("%w: got %d digits, want %d", ErrInvalidDigits, len(values), Length)
	}
	copy(d[:], values)
	if err := d.Validate(); err != nil {
		return Digits{}, err
	}
	return d, nil
}

// Parse decodes a string of exactly nine decimal characters.
func Parse(s string) (Digits, error) {
	var d Digits
	if len(s) != Length {
		return d, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidDigits, s, len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Digits{}, fmt.Errorf("%w: %q has non-digit %q at position %d", ErrInvalidDigits, s, c, i+1)
		}
		d[i] = int(c - '0')
	}
	return d, nil
}

// Compute returns the weighted sum of d modulo 11, where the digit at 1-based
// position p carries weight p. The result is always in [0, 10].
func Compute(d Digits) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return weightedSum(d) % Modulus, nil
}

// MustCompute is Compute for sequences the caller built itself.
func MustCompute(d Digits) int {
	sum, err := Compute(d)
	if err != nil {
		panic(fmt.Sprintf("checksum: %v", err))
	}
	return sum
}

// ComputeSlice validates and checksums an arbitrary slice.
func ComputeSlice(values []int) (int, error) {
	d, err := FromSlice(values)
	if err != nil {
		return 0, err
	}
	return Compute(d)
}

func weightedSum(d Digits) int {
	sum := 0
	for i, v := range d {
		sum += (i + 1) * v
	}
	return sum
}
