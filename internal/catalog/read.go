// Package catalog turns exoplanet archive tables into typed rows and
// planetary systems.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/xuri/excelize/v2"
)

var columnAliases = map[string][]string{
	"host":   {"hostname", "host", "system", "host_name"},
	"letter": {"pl_letter", "letter", "planet"},
	"period": {"pl_orbper", "period", "orbital_period", "period_days"},
	"mass":   {"pl_bmassj", "mass_j", "mass", "mass_jup"},
	"method": {"discoverymethod", "discovery_method", "method"},
	"year":   {"disc_year", "discovery_year", "year"},
}

type columns map[string]int

func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	cols := make(columns)
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				cols[field] = i
				break
			}
		}
	}

	if _, ok := cols["period"]; !ok {
		return nil, dynamo.Invalid("no orbital period column in header %v", header)
	}
	if _, ok := cols["host"]; !ok {
		return nil, dynamo.Invalid("no host system column in header %v", header)
	}
	return cols, nil
}

func (c columns) cell(record []string, field string) string {
	i, ok := c[field]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columns) float(record []string, field string) float64 {
	s := c.cell(record, field)
	if s == "" {
		return nan()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nan()
	}
	return v
}

func (c columns) row(record []string) (Row, bool) {
	host := c.cell(record, "host")
	if host == "" {
		return Row{}, false
	}

	year, err := strconv.Atoi(c.cell(record, "year"))
	if err != nil {
		year = 0
	}

	return Row{
		Host:            host,
		Letter:          c.cell(record, "letter"),
		PeriodDays:      c.float(record, "period"),
		MassJup:         c.float(record, "mass"),
		DiscoveryMethod: c.cell(record, "method"),
		DiscoveryYear:   year,
	}, true
}

func parseRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, dynamo.Invalid("catalog is empty")
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if r, ok := cols.row(record); ok {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// ReadCSV parses a CSV catalog. Lines starting with '#' are skipped, which
// covers the comment preamble of NASA archive downloads. Stray quotes are
// tolerated and records that still fail to parse are dropped.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		records = append(records, record)
	}
	return parseRecords(records)
}

// ReadXLSX parses the first sheet of a workbook.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, dynamo.Invalid("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return parseRecords(records)
}

// Open reads a catalog file, choosing the parser by extension.
func Open(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(file)
	default:
		return ReadCSV(file)
	}
}
