// Package spreadsheet reads and writes the debate achievements workbook.
package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/debatehub/podium/internal/domain/parse"
)

// Column layout of the achievements sheet. Column C holds free-form notes
// the pipeline does not consume.
const (
	colTournament = 0
	colDate       = 1
	colTeam       = 3
	colSpeaker    = 4
)

var headerRow = []string{"Tournament", "Date", "Format", "Team Achievements", "Speaker Awards"}

// ReadRows loads tournament rows from the first sheet of the workbook at
// path. The first row is treated as a header; rows without a tournament
// name are skipped.
func ReadRows(path string) ([]parse.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s: %w", path, ErrNoSheets)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var out []parse.Row
	for i, row := range rows {
		if i == 0 {
			continue
		}
		tournament := strings.TrimSpace(cell(row, colTournament))
		if tournament == "" {
			continue
		}
		out = append(out, parse.Row{
			Tournament:  tournament,
			Date:        cell(row, colDate),
			TeamCell:    cell(row, colTeam),
			SpeakerCell: cell(row, colSpeaker),
		})
	}
	return out, nil
}

// WriteRows writes rows to a new workbook at path with a header row.
// Used by the seed tool to fabricate sample data.
func WriteRows(path string, rows []parse.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		record := []string{r.Tournament, r.Date, "", r.TeamCell, r.SpeakerCell}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &record); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// cell returns the trimmed-at-index cell value, tolerating short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
