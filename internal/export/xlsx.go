package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/resonancex/internal/resonance"
)

const (
	SheetResonances = "Resonances"
	SheetSystems    = "Systems"
	SheetRatios     = "Ratios"
)

// ResonanceWorkbook lays out a detection run as a spreadsheet: every pair,
// the per-system ranking and the ratio histogram. The caller closes the file.
func ResonanceWorkbook(matches []resonance.Match, summary resonance.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetResonances); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetSystems, SheetRatios} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	pairs := [][]any{{"System", "Period A (d)", "Period B (d)", "Ratio", "Deviation"}}
	for _, m := range matches {
		pairs = append(pairs, []any{m.System, m.PeriodA, m.PeriodB, m.Ratio(), m.Deviation()})
	}

	systems := [][]any{
		{"System", "Resonant pairs"},
	}
	for _, s := range summary.Top {
		systems = append(systems, []any{s.System, s.Pairs})
	}
	systems = append(systems,
		[]any{},
		[]any{"Total pairs", summary.Pairs},
		[]any{"Systems with resonances", summary.Systems},
	)

	ratios := [][]any{{"Ratio", "Count"}}
	for _, rc := range resonance.Histogram(matches) {
		ratios = append(ratios, []any{rc.Ratio, rc.Count})
	}

	for sheet, rows := range map[string][][]any{
		SheetResonances: pairs,
		SheetSystems:    systems,
		SheetRatios:     ratios,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			f.Close()
			return nil, err
		}
		end, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err := f.SetCellStyle(sheet, "A1", end, bold); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func WriteResonanceWorkbook(path string, matches []resonance.Match, summary resonance.Summary) error {
	f, err := ResonanceWorkbook(matches, summary)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
