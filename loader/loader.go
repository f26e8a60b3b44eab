package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/core"
)

// Column names of the edge CSV.
const (
	ColStart      = "start"
	ColEnd        = "end"
	ColDistance   = "distance"
	ColTime       = "time"
	ColAccessible = "accessible"
)

// RequiredColumns lists the header fields every edge file must have.
var RequiredColumns = []string{ColStart, ColEnd, ColDistance, ColTime, ColAccessible}

// SkippedRow describes a data row that was not loaded.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Report summarizes one Load call.
type Report struct {
	// Rows counts data rows read (loaded plus skipped).
	Rows int `json:"rows"`
	// Loaded counts rows turned into AddEdge calls.
	Loaded int `json:"loaded"`
	// Skipped lists rows rejected, in file order.
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

// LoadFile opens path and loads it into g. A missing file yields an error
// matching os.ErrNotExist.
func LoadFile(path string, g *core.Graph, opts ...Option) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, g, opts...)
}

// Load reads edge rows from r and adds them to g.
//
// Steps:
//  1. Read and index the header; fail on missing columns.
//  2. For each record: parse distance (thousand separators stripped),
//     time and accessible; skip and log on failure.
//  3. AddEdge(start, end, attr) in file order, so later duplicates win.
func Load(r io.Reader, g *core.Graph, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Report{}, ErrNilGraph
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	idx, err := readHeader(cr)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, fmt.Errorf("loader: read: %w", err)
		}
		rep.Rows++
		line, _ := cr.FieldPos(0)

		a, b, attr, reason := parseRow(rec, idx)
		if reason != "" {
			rep.Skipped = append(rep.Skipped, SkippedRow{Line: line, Reason: reason})
			o.logger.Warn("skipping invalid row",
				zap.Int("line", line),
				zap.String("reason", reason),
				zap.Strings("record", rec),
			)
			continue
		}
		g.AddEdge(a, b, attr)
		rep.Loaded++
	}

	o.logger.Info("edges loaded",
		zap.Int("rows", rep.Rows),
		zap.Int("loaded", rep.Loaded),
		zap.Int("skipped", len(rep.Skipped)),
		zap.Int("nodes", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return rep, nil
}

// Validate checks that the file at path exists and its header carries all
// required columns. Data rows are not inspected.
func Validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	_, err = readHeader(csv.NewReader(f))
	return err
}

// readHeader maps required column names to their field index.
func readHeader(cr *csv.Reader) (map[string]int, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, k := range header {
		k = strings.TrimSpace(strings.TrimPrefix(k, "\ufeff"))
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return idx, nil
}

// parseRow extracts one edge. reason is non-empty when the row is rejected.
func parseRow(rec []string, idx map[string]int) (a, b string, attr core.EdgeAttr, reason string) {
	field := func(col string) (string, bool) {
		i := idx[col]
		if i >= len(rec) {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}

	var ok bool
	vals := make(map[string]string, len(RequiredColumns))
	for _, col := range RequiredColumns {
		if vals[col], ok = field(col); !ok {
			return "", "", attr, fmt.Sprintf("missing field %q", col)
		}
	}

	a, b = vals[ColStart], vals[ColEnd]
	if a == "" || b == "" {
		return "", "", attr, "empty start or end"
	}

	d, err := strconv.ParseFloat(strings.ReplaceAll(vals[ColDistance], ",", ""), 64)
	if err != nil {
		return "", "", attr, fmt.Sprintf("invalid distance %q", vals[ColDistance])
	}
	t, err := strconv.ParseFloat(vals[ColTime], 64)
	if err != nil {
		return "", "", attr, fmt.Sprintf("invalid time %q", vals[ColTime])
	}

	attr = core.EdgeAttr{
		Distance:   d,
		Time:       t,
		Accessible: strings.EqualFold(vals[ColAccessible], "true"),
	}

	return a, b, attr, ""
}
