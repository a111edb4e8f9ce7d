package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brandonbloom/isbnfix/internal/checksum"
	"github.com/samber/lo"
)

var (
	// ErrMalformedFixture indicates an artifact that cannot be decoded into
	// records.
	ErrMalformedFixture = errors.New("malformed fixture")
	// ErrChecksumMismatch indicates a stored checksum that disagrees with the
	// one computed from its digits.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// MismatchError describes the first record whose stored checksum is wrong.
type MismatchError struct {
	Index  int
	Digits checksum.Digits
	Stored int
	Want   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("record %d (%s): stored checksum %d, computed %d", e.Index+1, e.Digits, e.Stored, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// InputLines renders the digits of rec one per line.
func InputLines(rec Record) []string {
	return lo.Map(rec.Digits[:], func(v int, _ int) string {
		return strconv.Itoa(v)
	})
}

// Write serializes records to the two parallel artifacts: nine single-digit
// lines per record on input and one checksum line per record on output.
func Write(input, output io.Writer, records []Record) error {
	in := bufio.NewWriter(input)
	out := bufio.NewWriter(output)
	for _, rec := range records {
		if _, err := in.WriteString(strings.Join(InputLines(rec), "\n") + "\n"); err != nil {
			return fmt.Errorf("write input record: %w", err)
		}
		if _, err := fmt.Fprintf(out, "%d\n", rec.Checksum); err != nil {
			return fmt.Errorf("write output record: %w", err)
		}
	}
	if err := in.Flush(); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Read decodes a fixture pair back into records. Stored checksums are
// returned as found; use Verify to compare them against the digits.
func Read(input, output io.Reader) ([]Record, error) {
	digits, err := readLines(input, "input", parseDigit)
	if err != nil {
		return nil, err
	}
	sums, err := readLines(output, "output", parseChecksum)
	if err != nil {
		return nil, err
	}
	if len(digits) != len(sums)*checksum.Length {
		return nil, fmt.Errorf("%w: input has %d lines, want %d for %d checksums",
			ErrMalformedFixture, len(digits), len(sums)*checksum.Length, len(sums))
	}

	chunks := lo.Chunk(digits, checksum.Length)
	records := make([]Record, len(sums))
	for i, sum := range sums {
		d, err := checksum.FromSlice(chunks[i])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedFixture, i+1, err)
		}
		records[i] = Record{Digits: d, Checksum: sum}
	}
	return records, nil
}

// Verify recomputes every checksum and reports the first disagreement as a
// *MismatchError.
func Verify(records []Record) error {
	for i, rec := range records {
		want, err := checksum.Compute(rec.Digits)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if want != rec.Checksum {
			return &MismatchError{Index: i, Digits: rec.Digits, Stored: rec.Checksum, Want: want}
		}
	}
	return nil
}

// parseDigit accepts exactly one ASCII digit.
func parseDigit(text string) (int, bool) {
	if len(text) != 1 || text[0] < '0' || text[0] > '9' {
		return 0, false
	}
	return int(text[0] - '0'), true
}

// parseChecksum accepts the canonical decimal form of 0-10: no sign, no
// padding, no leading zeros.
func parseChecksum(text string) (int, bool) {
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 || v >= checksum.Modulus || strconv.Itoa(v) != text {
		return 0, false
	}
	return v, true
}

func readLines(r io.Reader, name string, parse func(string) (int, bool)) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		v, ok := parse(text)
		if !ok {
			return nil, fmt.Errorf("%w: %s line %d: %q is not a plain decimal value", ErrMalformedFixture, name, line, text)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return values, nil
}
