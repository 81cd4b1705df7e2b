package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"othello/game"
)

// SearchRecord is one row of the search log.
type SearchRecord struct {
	ID     string
	Time   time.Time
	Player game.Cell
	Move   game.Point
	SearchMetric
}

var recordHeader = []string{
	"id", "time", "player", "row", "col", "duration_ms", "episodes", "nodes",
	"playout_plies", "root_wins", "root_visits",
}

// Writer appends search records to a CSV file, writing the header when the
// file is new.
type Writer struct {
	path string
}

func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return &Writer{path: path}, nil
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open search records file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat search records file: %w", err)
	}

	writer := csv.NewWriter(f)

	if info.Size() == 0 {
		if err := writer.Write(recordHeader); err != nil {
			return fmt.Errorf("failed to write search records header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Time.UTC().Format(time.RFC3339),
			strconv.Itoa(int(record.Player)),
			strconv.Itoa(record.Move.Row),
			strconv.Itoa(record.Move.Col),
			strconv.FormatInt(record.Duration.Milliseconds(), 10),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.PlayoutPlies),
			strconv.Itoa(record.RootWins),
			strconv.Itoa(record.RootVisits),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
