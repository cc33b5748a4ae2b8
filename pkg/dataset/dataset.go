// Package dataset loads salary benchmark tables from CSV and selects
// representative rows by relative spread.
package dataset

import (
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paybench/capband/pkg/models"
	"github.com/zeebo/blake3"
)

// Sentinel errors callers branch on.
var (
	ErrEmptyDataset  = errors.New("dataset contains no rows")
	ErrMissingColumn = errors.New("dataset is missing a required column")
)

// Required header columns. Order is free and extra columns are ignored.
var requiredColumns = []string{"title", "mu", "sigma", "p65"}

// Dataset is a loaded benchmark table with provenance.
type Dataset struct {
	Info models.DatasetInfo
	Rows []models.SalaryRow
}

// Load reads a CSV benchmark table from path. The first record must be a
// header naming at least title, mu, sigma, and p65. Every row is validated:
// mu must be positive, sigma non-negative, and all numeric fields parseable.
// A malformed row aborts the load with its row number.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	rows, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return &Dataset{
		Info: models.DatasetInfo{
			Path:        path,
			Fingerprint: Fingerprint(raw),
			Rows:        len(rows),
		},
		Rows: rows,
	}, nil
}

// Parse decodes CSV bytes into salary rows. Exposed separately so tests and
// embedded datasets can bypass the filesystem.
func Parse(raw []byte) ([]models.SalaryRow, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	cols, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]models.SalaryRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	return rows, nil
}

// Fingerprint returns the BLAKE3 hex digest of the raw dataset bytes.
// Reports embed it so a rendered artifact can be matched to its input.
func Fingerprint(raw []byte) string {
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func parseRow(record []string, cols map[string]int) (models.SalaryRow, error) {
	field := func(name string) (string, error) {
		idx := cols[name]
		if idx >= len(record) {
			return "", fmt.Errorf("missing value for %s", name)
		}
		return strings.TrimSpace(record[idx]), nil
	}

	title, err := field("title")
	if err != nil {
		return models.SalaryRow{}, err
	}
	if title == "" {
		return models.SalaryRow{}, errors.New("empty title")
	}

	nums := make(map[string]float64, 3)
	for _, name := range []string{"mu", "sigma", "p65"} {
		s, err := field(name)
		if err != nil {
			return models.SalaryRow{}, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.SalaryRow{}, fmt.Errorf("invalid %s %q", name, s)
		}
		nums[name] = v
	}

	if nums["mu"] <= 0 {
		return models.SalaryRow{}, fmt.Errorf("mu must be positive, got %v", nums["mu"])
	}
	if nums["sigma"] < 0 {
		return models.SalaryRow{}, fmt.Errorf("sigma must be non-negative, got %v", nums["sigma"])
	}

	return models.SalaryRow{
		Title: title,
		Mu:    nums["mu"],
		Sigma: nums["sigma"],
		P65:   nums["p65"],
	}, nil
}
