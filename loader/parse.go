package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/kcluster/codec"
)

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// Record is one decoded point before identifiers are assigned.
type Record struct {
	Values []float64 `json:"values"`
	Label  string    `json:"label,omitempty"`
}

// Parse decodes all records of the given format from r.
// source names the input in RecordErrors.
func Parse(r io.Reader, source string, format Format, dim int, c codec.Codec) ([]Record, error) {
	return parse(r, source, format, dim, c, nil)
}

// parse calls reserve before keeping each decoded record, so a failed
// reservation stops decoding at that line.
func parse(r io.Reader, source string, format Format, dim int, c codec.Codec, reserve func() error) ([]Record, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	if c == nil {
		c = codec.Default
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		records []Record
		line    int
	)
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		var (
			rec Record
			err error
		)
		switch format {
		case FormatJSONL:
			rec, err = parseJSONRecord(raw, dim, c)
		default:
			rec, err = parseTextRecord(string(raw), dim)
		}
		if err != nil {
			return nil, &RecordError{Source: source, Line: line, Err: err}
		}
		if reserve != nil {
			if err := reserve(); err != nil {
				return nil, fmt.Errorf("loader: %s:%d: %w", source, line, err)
			}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", source, err)
	}
	return records, nil
}

// parseTextRecord keeps the last dim numeric tokens as coordinates and joins
// the non-numeric tokens into the label. Earlier numeric tokens are dropped.
func parseTextRecord(line string, dim int) (Record, error) {
	var (
		nums  []float64
		words []string
	)
	for _, tok := range strings.Fields(line) {
		if v, ok := parseCoord(tok); ok {
			nums = append(nums, v)
			continue
		}
		words = append(words, tok)
	}
	if len(nums) < dim {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrTooFewValues, len(nums), dim)
	}

	return Record{
		Values: nums[len(nums)-dim:],
		Label:  strings.Join(words, " "),
	}, nil
}

// parseCoord accepts finite float64 literals. NaN and Inf spellings are
// treated as label text.
func parseCoord(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseJSONRecord(raw []byte, dim int, c codec.Codec) (Record, error) {
	var rec Record
	if err := c.Unmarshal(raw, &rec); err != nil {
		return Record{}, err
	}
	if len(rec.Values) != dim {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrDimension, len(rec.Values), dim)
	}
	for i, v := range rec.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, fmt.Errorf("loader: value %d is not finite", i)
		}
	}
	return rec, nil
}
