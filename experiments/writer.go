package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Writer dumps batch results as CSV for offline balance analysis.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// WriteGameRecords writes one row per game with a victory-point column per
// bloc, columns in a stable order.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	var blocs []string
	if len(records) > 0 {
		for name := range records[0].Points {
			blocs = append(blocs, name)
		}
		sort.Strings(blocs)
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"game", "seed", "winner", "turns"}
	for _, name := range blocs {
		header = append(header, "vp_"+name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.FormatUint(r.Seed, 10),
			r.Winner,
			strconv.Itoa(r.Turns),
		}
		for _, name := range blocs {
			row = append(row, strconv.Itoa(r.Points[name]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
