package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVExport is a rendered download: the file body plus the filename the
// browser should save it as.
type CSVExport struct {
	Filename string
	Content  []byte
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildCSV renders headers and rows to CSV and names the file
// {context}_{label}_{tableType}.csv with spaces replaced by
// underscores. The label is the season year for team exports and the
// player id for career exports.
func (s *ExportService) BuildCSV(ctx context.Context, exportContext, label, tableType string, headers []string, rows [][]string) (CSVExport, error) {
	_, span := startUsecaseSpan(ctx, "ExportService.BuildCSV")
	defer span.End()

	exportContext = strings.TrimSpace(exportContext)
	if exportContext == "" {
		return CSVExport{}, fmt.Errorf("%w: export context is required", ErrInvalidInput)
	}
	tableType = strings.TrimSpace(tableType)
	if tableType == "" {
		return CSVExport{}, fmt.Errorf("%w: table type is required", ErrInvalidInput)
	}
	if len(headers) == 0 {
		return CSVExport{}, fmt.Errorf("%w: headers are required", ErrInvalidInput)
	}
	if len(rows) == 0 {
		return CSVExport{}, fmt.Errorf("%w: rows are required", ErrInvalidInput)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return CSVExport{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidInput, i, len(row), len(headers))
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return CSVExport{}, fmt.Errorf("write csv headers: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return CSVExport{}, fmt.Errorf("write csv rows: %w", err)
	}

	return CSVExport{
		Filename: exportFilename(exportContext, label, tableType),
		Content:  buf.Bytes(),
	}, nil
}

func exportFilename(exportContext, label, tableType string) string {
	parts := []string{exportContext}
	if label = strings.TrimSpace(label); label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, tableType)
	name := strings.Join(parts, "_") + ".csv"
	return strings.ReplaceAll(name, " ", "_")
}
