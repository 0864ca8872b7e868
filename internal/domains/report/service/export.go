package service

import (
	"agendador/internal/domains/report/model"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// renderCSV writes one header line followed by one line per room.
func renderCSV(rows []model.Row) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(model.Header); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.RoomID,
			row.RoomName,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Pending),
			strconv.Itoa(row.Approved),
			strconv.Itoa(row.Rejected),
			strconv.Itoa(row.Cancelled),
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing csv row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// renderXLSX builds a single-sheet workbook with a bold header row.
func renderXLSX(rows []model.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(model.SheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}

	f.SetActiveSheet(index)

	for col, title := range model.Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(model.SheetName, cell, title)
	}

	for i, row := range rows {
		for col, value := range row.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(model.SheetName, cell, value)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(model.Header), 1)
		_ = f.SetCellStyle(model.SheetName, "A1", lastCell, style)
	}

	_ = f.SetColWidth(model.SheetName, "A", "B", 30)

	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func render(format string, rows []model.Row) (data []byte, contentType string, err error) {
	switch format {
	case model.FormatXLSX:
		data, err = renderXLSX(rows)

		return data, contentTypeXLSX, err
	default:
		data, err = renderCSV(rows)

		return data, contentTypeCSV, err
	}
}
