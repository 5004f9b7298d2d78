package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/model"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrMemberOutOfRange is returned by New when a cluster member does not
// index into the point slice.
var ErrMemberOutOfRange = errors.New("report: member index out of range")

// Format selects the report encoding.
type Format int

const (
	// FormatText is the human-readable console layout.
	FormatText Format = iota
	// FormatJSON is a single JSON document.
	FormatJSON
)

// ParseFormat maps "text" and "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Report is a rendering-ready view of a result.
type Report struct {
	Iterations int       `json:"iterations"`
	Stop       string    `json:"stop"`
	Clusters   []Cluster `json:"clusters"`
}

// Cluster is one cluster with its members in the order they joined.
type Cluster struct {
	ID       int       `json:"id"`
	Centroid []float64 `json:"centroid"`
	Points   []Point   `json:"points"`
}

// Point is a member of a cluster.
type Point struct {
	ID     int       `json:"id"`
	Values []float64 `json:"values"`
	Label  string    `json:"label,omitempty"`
}

// New joins a result with the points it was computed from.
func New(res *kcluster.Result, points []*model.Point) (*Report, error) {
	rep := &Report{
		Iterations: res.Iterations,
		Stop:       res.Stop.String(),
		Clusters:   make([]Cluster, len(res.Clusters)),
	}
	for i, c := range res.Clusters {
		members := make([]Point, len(c.Members))
		for j, idx := range c.Members {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%w: cluster %d member %d", ErrMemberOutOfRange, c.ID, idx)
			}
			p := points[idx]
			members[j] = Point{ID: p.ID(), Values: p.Values(), Label: p.Label()}
		}
		rep.Clusters[i] = Cluster{ID: c.ID, Centroid: c.Centroid, Points: members}
	}
	return rep, nil
}

// Write renders rep to w in format f. c is used for JSON; nil selects codec.Default.
func Write(w io.Writer, f Format, rep *Report, c codec.Codec) error {
	switch f {
	case FormatText:
		return rep.WriteText(w)
	case FormatJSON:
		return rep.WriteJSON(w, c)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// textPrecision is the number of significant digits in text reports, the
// default stream precision of the classic console output. JSON reports keep
// full precision.
const textPrecision = 6

// WriteText writes the console layout. Every value is printed with six
// significant digits and followed by a space, as in the classic output.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Break in iteration %d\n\n", r.Iterations)
	for _, c := range r.Clusters {
		fmt.Fprintf(bw, "Cluster %d\n", c.ID+1)
		for _, p := range c.Points {
			fmt.Fprintf(bw, "Point %d: ", p.ID+1)
			writeValues(bw, p.Values)
			if p.Label != "" {
				bw.WriteString("- ")
				bw.WriteString(p.Label)
			}
			bw.WriteByte('\n')
		}
		bw.WriteString("Cluster centroid: ")
		writeValues(bw, c.Centroid)
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

func writeValues(bw *bufio.Writer, values []float64) {
	var buf [32]byte
	for _, v := range values {
		bw.Write(strconv.AppendFloat(buf[:0], v, 'g', textPrecision, 64))
		bw.WriteByte(' ')
	}
}

// WriteJSON writes the report as one JSON document followed by a newline.
func (r *Report) WriteJSON(w io.Writer, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
