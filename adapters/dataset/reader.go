// Package dataset reads patient-billing tables from CSV and Excel files
// into the typed, immutable records.Table the rest of the process shares.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"healthdash/domain/records"
	"healthdash/internal/errors"
)

// Required column names; part of the input-file contract
const (
	ColAge       = "Age"
	ColGender    = "Gender"
	ColCondition = "Medical Condition"
	ColProvider  = "Insurance Provider"
	ColBilling   = "Billing Amount"
	ColAdmission = "Date of Admission"
)

var requiredColumns = []string{
	ColAge, ColGender, ColCondition, ColProvider, ColBilling, ColAdmission,
}

// Reader loads a records table from a CSV or Excel file
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader that dispatches on the file extension
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Load reads, coerces and validates the whole file. Any structural
// problem — missing file, missing required column, unparsable age or
// admission date — is fatal; the caller must not serve a partial table.
// Unparsable billing amounts become missing markers, not errors.
func Load(path string) (*records.Table, error) {
	return NewReader(path).Load()
}

// Load implements the load(path) -> Table contract
func (r *Reader) Load() (*records.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.LoadError("records file not found: "+r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.LoadError("records file must have a header row and at least one data row", nil)
	}

	return r.buildTable(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoadError("failed to parse CSV file", err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.LoadError("Excel file has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.LoadError("failed to read sheet "+sheets[0], err)
	}
	return rows, nil
}

// buildTable converts raw string rows into a typed table
func (r *Reader) buildTable(rows [][]string) (*records.Table, error) {
	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	parsed := make([]records.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := buildRecord(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
		parsed = append(parsed, record)
	}

	return records.NewTable(r.filePath, parsed), nil
}

// resolveColumns maps required column names to their indices, failing when
// any is absent
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.SchemaError(fmt.Sprintf("required column %q missing from header", required))
		}
	}
	return columns, nil
}

func buildRecord(row []string, columns map[string]int) (records.Record, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	age, err := parseAge(cell(ColAge))
	if err != nil {
		return records.Record{}, err
	}
	admitted, err := parseAdmission(cell(ColAdmission))
	if err != nil {
		return records.Record{}, err
	}

	return records.Record{
		Age:       age,
		Gender:    cell(ColGender),
		Condition: cell(ColCondition),
		Provider:  cell(ColProvider),
		Billing:   parseBilling(cell(ColBilling)),
		Admitted:  admitted,
		YearMonth: records.YearMonthOf(admitted),
	}, nil
}
