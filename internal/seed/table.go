package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Row maps column names to trimmed cell values.
type Row map[string]string

// Get returns the first non-blank value among the given columns.
func (r Row) Get(columns ...string) string {
	for _, c := range columns {
		if v := r[c]; v != "" {
			return v
		}
	}
	return ""
}

// ReadTable parses a comma-delimited table. The first line that is neither
// blank nor a "#" comment is the header. Fields are split on every comma:
// quoting is not supported, so values cannot contain commas. Missing trailing
// cells read as "".
func ReadTable(r io.Reader) ([]Row, error) {
	var header []string
	var rows []Row

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cells := splitLine(line)
		if header == nil {
			header = cells
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return rows, nil
}

func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
