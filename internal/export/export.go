// Package export writes candidate records as CSV, XLSX or JSON tables.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/resumecua/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds exported candidates.
const SheetName = "Candidates"

// Content types of the export formats.
const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeJSON = "application/json"
)

// WriteCSV writes a header row and one row per record.
func WriteCSV(w io.Writer, rows []models.CandidateRecord) error {
	cols := models.Columns(rows)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			record[i] = r.Field(c)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with a single Candidates sheet. Scores are numeric cells.
func WriteXLSX(w io.Writer, rows []models.CandidateRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	cols := models.Columns(rows)
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for n, r := range rows {
		values := make([]interface{}, len(cols))
		for i, c := range cols {
			if c == models.ColRelevancyScore {
				if s, ok := r.Score(); ok {
					values[i] = s
					continue
				}
			}
			values[i] = r.Field(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", n+1, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, rows []models.CandidateRecord) error {
	if rows == nil {
		rows = []models.CandidateRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Writer returns the writer and content type for a file path, chosen by extension.
// Anything other than .xlsx or .json is written as CSV.
func Writer(path string) (func(io.Writer, []models.CandidateRecord) error, string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX, ContentTypeXLSX
	case ".json":
		return WriteJSON, ContentTypeJSON
	default:
		return WriteCSV, ContentTypeCSV
	}
}

// WriteFile exports rows to path in the format its extension names.
func WriteFile(path string, rows []models.CandidateRecord) (err error) {
	write, _ := Writer(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(f, rows)
}
