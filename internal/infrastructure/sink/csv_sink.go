package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ruckdata/rugby-crawler/internal/domain/scorecard"
)

// CSVSink appends one row per match to the output file. Every append is a
// self-contained open-write-close so concurrent pipeline workers never share
// a file handle. No header row is ever written: the file accumulates rows
// across runs under the fixed scorecard schema.
type CSVSink struct {
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Append(m scorecard.Match) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(m.Row()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush record: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", s.path, err)
	}
	return nil
}
