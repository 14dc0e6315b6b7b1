package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// noneValueIndicator marks an absent catalogue value. This is U+2013 (en
// dash), not a hyphen-minus, matching the original catalogue files.
const noneValueIndicator = "–"

// Parse reads one whitespace-separated catalogue file: a names row, a units
// row (discarded), then data rows. The first column of every row is the
// mass-flow value; the remaining columns are named by the names row.
func Parse(r io.Reader) (*Catalogue, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, ErrEmptyFile
	}

	names := lines[0]
	classes := append([]string(nil), names[1:]...)

	cat := &Catalogue{Classes: classes}
	for _, fields := range lines[2:] {
		if len(fields) != len(names) {
			return nil, fmt.Errorf("%w: got %d fields, want %d", ErrColumnMismatch, len(fields), len(names))
		}

		massFlow, err := parseDecimal(fields[0])
		if err != nil {
			return nil, fmt.Errorf("catalogue: mass-flow field %q: %w", fields[0], err)
		}

		row := Row{MassFlow: massFlow, Values: make(map[string]float64)}
		for i, class := range classes {
			raw := fields[i+1]
			if raw == noneValueIndicator {
				continue
			}
			v, err := parseDecimal(raw)
			if err != nil {
				return nil, fmt.Errorf("catalogue: class %q field %q: %w", class, raw, err)
			}
			row.Values[class] = v
		}
		cat.Rows = append(cat.Rows, row)
	}

	if len(cat.Rows) == 0 {
		return nil, ErrEmptyFile
	}
	return cat, nil
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// LoadDir reads every file in dir as a catalogue, merges their rows and
// classes, and sorts the merged result by mass flow ascending, matching
// the directory-of-files ingestion convention pipe manufacturers publish
// catalogues under (one file per series) before building one combined,
// sorted table.
func LoadDir(dir string) (*Catalogue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	merged := &Catalogue{}
	classSeen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		cat, err := Parse(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("catalogue: %s: %w", entry.Name(), err)
		}
		if closeErr != nil {
			return nil, closeErr
		}

		for _, c := range cat.Classes {
			if _, ok := classSeen[c]; !ok {
				classSeen[c] = struct{}{}
				merged.Classes = append(merged.Classes, c)
			}
		}
		merged.Rows = append(merged.Rows, cat.Rows...)
	}

	if len(merged.Rows) == 0 {
		return nil, ErrNoRows
	}

	sort.Slice(merged.Rows, func(i, j int) bool { return merged.Rows[i].MassFlow < merged.Rows[j].MassFlow })
	return merged, nil
}
