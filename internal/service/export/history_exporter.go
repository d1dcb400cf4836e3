// Package export copies new history entries to a spreadsheet.
package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
)

// HistorySource lists the entries to export.
type HistorySource interface {
	List(ctx context.Context) []models.HistoryEntry
}

// SheetWriter is the spreadsheet side of the export.
type SheetWriter interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
	ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error)
}

// Header is the column layout of an exported row.
var Header = []interface{}{"id", "timestamp", "age", "height_cm", "weight_kg", "bmi", "category", "label"}

// HistoryExporter appends every entry newer than the last exported one.
type HistoryExporter struct {
	source     HistorySource
	sheet      SheetWriter
	sheetRange string
	logger     *zap.Logger

	mu        sync.Mutex
	watermark int64
	seeded    bool
}

// NewHistoryExporter wires an exporter writing to sheetRange.
func NewHistoryExporter(source HistorySource, sheet SheetWriter, sheetRange string, logger *zap.Logger) *HistoryExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryExporter{source: source, sheet: sheet, sheetRange: sheetRange, logger: logger}
}

// Export writes the pending entries and returns how many rows were appended.
// The watermark is seeded from the ids already in the sheet on first use.
func (e *HistoryExporter) Export(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.seeded {
		if err := e.seed(ctx); err != nil {
			return 0, err
		}
	}

	var (
		out  [][]interface{}
		last = e.watermark
	)
	for _, entry := range e.source.List(ctx) {
		id, err := strconv.ParseInt(entry.ID, 10, 64)
		if err != nil {
			e.logger.Warn("skipping history entry with non-numeric id", zap.String("id", entry.ID))
			continue
		}
		if id <= e.watermark {
			continue
		}
		out = append(out, Row(entry))
		if id > last {
			last = id
		}
	}

	if len(out) == 0 {
		return 0, nil
	}
	if err := e.sheet.AppendRows(ctx, e.sheetRange, out); err != nil {
		return 0, fmt.Errorf("export history: %w", err)
	}

	e.watermark = last
	return len(out), nil
}

func (e *HistoryExporter) seed(ctx context.Context) error {
	values, err := e.sheet.ReadRange(ctx, idColumn(e.sheetRange))
	if err != nil {
		return fmt.Errorf("read export watermark: %w", err)
	}

	for _, row := range values {
		if len(row) == 0 {
			continue
		}
		if id, err := strconv.ParseInt(fmt.Sprint(row[0]), 10, 64); err == nil && id > e.watermark {
			e.watermark = id
		}
	}

	if len(values) == 0 {
		if err := e.sheet.AppendRows(ctx, e.sheetRange, [][]interface{}{Header}); err != nil {
			return fmt.Errorf("write export header: %w", err)
		}
	}

	e.seeded = true
	return nil
}

// Row renders one entry in Header order.
func Row(entry models.HistoryEntry) []interface{} {
	return []interface{}{
		entry.ID,
		time.UnixMilli(entry.Timestamp).UTC().Format(time.RFC3339),
		entry.Age,
		entry.Height,
		entry.Weight,
		entry.BMI,
		string(entry.Category),
		entry.CategoryLabel,
	}
}

// idColumn narrows "Sheet!A:H" to its first column, "Sheet!A:A".
func idColumn(sheetRange string) string {
	sheet, cells, found := strings.Cut(sheetRange, "!")
	if !found {
		cells, sheet = sheetRange, ""
	}
	first, _, _ := strings.Cut(cells, ":")
	first = strings.TrimRightFunc(first, func(r rune) bool { return r >= '0' && r <= '9' })
	col := first + ":" + first
	if sheet == "" {
		return col
	}
	return sheet + "!" + col
}
