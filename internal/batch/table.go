// Package batch runs the correction engine over a tabular file of
// (start date, end date, amount) rows, isolating per-row failures and
// appending a corrected-amount column to the output.
package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the CSV field delimiter, configurable via the csv.delimiter
// setting.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// Table is an in-memory spreadsheet: a header row plus data rows. Extra
// columns beyond the three required ones are carried through untouched.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable loads a tabular file, dispatching on extension: .xlsx through
// excelize, anything else as CSV.
func ReadTable(path string) (*Table, error) {
	log.WithField("file", path).Info("Reading batch input")

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty batch input: %s", path)
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in XLSX file: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty batch input: %s", path)
	}

	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}

// Write saves the table, dispatching on extension like ReadTable. The parent
// directory is created when missing.
func (t *Table) Write(path string) error {
	log.WithFields(logrus.Fields{
		"file": path,
		"rows": len(t.Rows),
	}).Info("Writing batch output")

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return t.writeXLSX(path)
	}
	return t.writeCSV(path)
}

func (t *Table) writeCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := writer.Write(t.Headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func (t *Table) writeXLSX(path string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	sheet := f.GetSheetName(0)
	rows := append([][]string{t.Headers}, t.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("error addressing row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving XLSX file: %w", err)
	}
	return nil
}
