package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	DefaultSheetName = "Warsto Quotation"
	timestampLayout  = "2006-01-02 15:04:05"
)

var header = []interface{}{
	"Timestamp", "BHK Type", "Selected Options", "Carpet Area",
	"Name", "Email", "Phone Number", "Property Name",
}

// ExcelLogger appends one row per submission to an xlsx workbook, creating
// the file and header row on first use.
type ExcelLogger struct {
	mu    sync.Mutex
	path  string
	sheet string
}

var _ interfaces.ISheetLogger = (*ExcelLogger)(nil)

func NewExcelLogger(path, sheet string) *ExcelLogger {
	if strings.TrimSpace(sheet) == "" {
		sheet = DefaultSheetName
	}
	return &ExcelLogger{path: path, sheet: sheet}
}

func (l *ExcelLogger) AppendSubmission(ctx context.Context, f entities.Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	wb, err := l.open()
	if err != nil {
		return err
	}
	defer wb.Close()

	rows, err := wb.GetRows(l.sheet)
	if err != nil {
		return fmt.Errorf("read sheet rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := SubmissionRow(f)
	if err := wb.SetSheetRow(l.sheet, cell, &row); err != nil {
		return fmt.Errorf("write sheet row: %w", err)
	}
	if err := wb.SaveAs(l.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (l *ExcelLogger) open() (*excelize.File, error) {
	wb, err := excelize.OpenFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return l.create()
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	idx, err := wb.GetSheetIndex(l.sheet)
	if err != nil {
		_ = wb.Close()
		return nil, err
	}
	if idx == -1 {
		if _, err := wb.NewSheet(l.sheet); err != nil {
			_ = wb.Close()
			return nil, err
		}
		if err := writeHeader(wb, l.sheet); err != nil {
			_ = wb.Close()
			return nil, err
		}
	}
	return wb, nil
}

func (l *ExcelLogger) create() (*excelize.File, error) {
	wb := excelize.NewFile()
	if err := wb.SetSheetName("Sheet1", l.sheet); err != nil {
		_ = wb.Close()
		return nil, err
	}
	if err := writeHeader(wb, l.sheet); err != nil {
		_ = wb.Close()
		return nil, err
	}
	return wb, nil
}

func writeHeader(wb *excelize.File, sheet string) error {
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	style, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return wb.SetCellStyle(sheet, "A1", last, style)
}

// SubmissionRow flattens a form into the sheet's column order.
func SubmissionRow(f entities.Form) []interface{} {
	return []interface{}{
		f.CreatedAt.UTC().Format(timestampLayout),
		f.DwellingSize,
		FormatSelections(f.Selections),
		f.CarpetArea,
		f.Contact.Name,
		f.Contact.Email,
		f.Contact.PhoneNumber,
		f.Contact.PropertyName,
	}
}

// FormatSelections renders one "Room: a, b" line per room, rooms sorted.
func FormatSelections(selections map[string][]string) string {
	rooms := make([]string, 0, len(selections))
	for room := range selections {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	lines := make([]string, 0, len(rooms))
	for _, room := range rooms {
		lines = append(lines, room+": "+strings.Join(selections[room], ", "))
	}
	return strings.Join(lines, "\n")
}
