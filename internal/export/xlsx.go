// Package export flattens generated problems into a spreadsheet for import
// into Google Forms.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ankhbayar/mcqgen/internal/quizgen"
)

const (
	// FileName is the fixed download name for the exported spreadsheet.
	FileName = "multiple_choice_questions.xlsx"

	// MIMEType is the standard xlsx content type.
	MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Асуултууд"
)

// Bounds on the option column count, matching the request option range.
const (
	minOptionColumns = 2
	maxOptionColumns = 6
)

// Table is the flattened, spreadsheet-ready projection of a problem list:
// one row per problem, one column per option slot, in input order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BuildTable projects problems into a table with 2+maxOptions columns:
// the question, option slots A onward (blank-padded when a problem has fewer
// options), and the correct answer. Row order is the input order; nothing is
// sorted, deduplicated, or dropped. maxOptions is clamped to [2,6].
func BuildTable(problems []quizgen.Problem, maxOptions int) Table {
	if maxOptions < minOptionColumns {
		maxOptions = minOptionColumns
	}
	if maxOptions > maxOptionColumns {
		maxOptions = maxOptionColumns
	}

	headers := make([]string, 0, 2+maxOptions)
	headers = append(headers, "Асуулт")
	for i := 0; i < maxOptions; i++ {
		headers = append(headers, fmt.Sprintf("Сонголт %c", 'A'+i))
	}
	headers = append(headers, "Зөв хариулт")

	rows := make([][]string, len(problems))
	for i, p := range problems {
		row := make([]string, 0, len(headers))
		row = append(row, p.Question)
		for slot := 0; slot < maxOptions; slot++ {
			if slot < len(p.Options) {
				row = append(row, p.Options[slot])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, p.CorrectAnswer)
		rows[i] = row
	}

	return Table{Headers: headers, Rows: rows}
}

// Bytes serializes the table as a single-sheet xlsx document and returns the
// in-memory payload. Writing it anywhere is the caller's concern.
func (t Table) Bytes() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &t.Headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}
	for i := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &t.Rows[i]); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
