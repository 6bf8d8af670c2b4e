package remnants

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"stocksync/internal/logger"
	"stocksync/internal/models"
	"stocksync/internal/services/marketplace"
)

// Column names used by the supplier's spreadsheet.
const (
	codeColumn     = "Код"
	quantityColumn = "Количество"
	priceColumn    = "Цена"
)

// Fetcher downloads the supplier's remnants archive and parses the
// spreadsheet inside into inventory records. Nothing is written to disk and
// nothing is cached between calls.
type Fetcher struct {
	url        string
	headerRow  int
	httpClient *http.Client
	logger     *logger.Logger
}

// NewFetcher creates a Fetcher. headerRow is the zero-based row index of the
// spreadsheet's column-name row; data rows follow it.
func NewFetcher(url string, headerRow int, logger *logger.Logger) *Fetcher {
	return &Fetcher{
		url:       url,
		headerRow: headerRow,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Fetch downloads the archive and returns the parsed inventory records.
func (f *Fetcher) Fetch() ([]models.InventoryRecord, error) {
	f.logger.Info("Downloading remnants feed from %s", f.url)

	resp, err := f.httpClient.Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("failed to download feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &marketplace.StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	records, err := f.parseArchive(data)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Parsed %d inventory records from feed", len(records))
	return records, nil
}

func (f *Fetcher) parseArchive(data []byte) ([]models.InventoryRecord, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open feed archive: %w", err)
	}

	var spreadsheet *zip.File
	for _, file := range archive.File {
		if strings.HasSuffix(file.Name, ".xlsx") {
			spreadsheet = file
			break
		}
	}
	if spreadsheet == nil {
		return nil, fmt.Errorf("no spreadsheet found in feed archive")
	}

	rc, err := spreadsheet.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", spreadsheet.Name, err)
	}
	defer rc.Close()

	workbook, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return f.parseRows(rows)
}

func (f *Fetcher) parseRows(rows [][]string) ([]models.InventoryRecord, error) {
	if len(rows) <= f.headerRow {
		return nil, fmt.Errorf("feed has no header row at offset %d", f.headerRow)
	}

	columns := make(map[string]int)
	for i, name := range rows[f.headerRow] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{codeColumn, quantityColumn, priceColumn} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("feed is missing column %q", required)
		}
	}

	var records []models.InventoryRecord
	for _, row := range rows[f.headerRow+1:] {
		code := strings.TrimSpace(cell(row, columns[codeColumn]))
		if code == "" {
			continue
		}
		records = append(records, models.InventoryRecord{
			Code:     code,
			Quantity: strings.TrimSpace(cell(row, columns[quantityColumn])),
			Price:    strings.TrimSpace(cell(row, columns[priceColumn])),
		})
	}
	return records, nil
}

// cell tolerates short rows: excelize drops trailing empty cells.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
