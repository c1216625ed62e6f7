package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridepulse/ridepulse/internal/domain/models"
	"github.com/ridepulse/ridepulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for the driver app's
// "Corridas" daily export. If the header doesn't match EXACTLY (order + count),
// ingestion must fail.
var expectedHeaders = []string{
	"id",
	"data",
	"preco_total",
	"lucro_liquido",
	"custo_total_combustivel",
	"tempo_total_min",
	"distancia_total_km",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - unrecoverable I/O errors
//
// It tolerates:
//   - empty cells (they become zero values; a missing id gets a fresh UUID)
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path.
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
func parseAndPersistFile(ctx context.Context, path string, repo storage.TripsRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we'll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.Trip, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertTripsBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		// Enforce structure: exactly 7 columns. If not, fail entire ingestion.
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		tr, err := recordToTrip(rec)
		if err != nil {
			// Structural/format error → fail the whole pipeline (explicit requirement).
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, tr)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	// Final flush
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToTrip converts a single CSV record (already validated length==7)
// into a models.Trip. It is STRICT about types/format but TOLERATES empty
// cells, mapping them to zero-values.
//
// Column order (export header → model fields):
//
//	0 id                      → ID (string; empty → new UUID)
//	1 data                    → RecordedAt (RFC 3339; empty → zero time)
//	2 preco_total             → TotalPrice (float, comma→dot, empty→0)
//	3 lucro_liquido           → NetProfit (float, comma→dot, empty→0)
//	4 custo_total_combustivel → TotalFuelCost (float, comma→dot, empty→0)
//	5 tempo_total_min         → TotalTimeMin (float, comma→dot, empty→0)
//	6 distancia_total_km      → TotalDistanceKm (float, comma→dot, empty→0)
func recordToTrip(rec []string) (models.Trip, error) {
	var t models.Trip

	// ID (0) — the app occasionally exports rows without one
	if s := strings.TrimSpace(rec[0]); s != "" {
		t.ID = s
	} else {
		t.ID = uuid.NewString()
	}

	// RecordedAt (1) — may be empty
	if s := strings.TrimSpace(rec[1]); s != "" {
		d, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return t, fmt.Errorf("invalid data: %v", err)
		}
		t.RecordedAt = d
	}

	var err error
	if t.TotalPrice, err = parseDecimal(rec[2], "preco_total"); err != nil {
		return t, err
	}
	if t.NetProfit, err = parseDecimal(rec[3], "lucro_liquido"); err != nil {
		return t, err
	}
	if t.TotalFuelCost, err = parseDecimal(rec[4], "custo_total_combustivel"); err != nil {
		return t, err
	}
	if t.TotalTimeMin, err = parseDecimal(rec[5], "tempo_total_min"); err != nil {
		return t, err
	}
	if t.TotalDistanceKm, err = parseDecimal(rec[6], "distancia_total_km"); err != nil {
		return t, err
	}

	return t, nil
}

// parseDecimal parses a numeric cell that may use a comma as the decimal
// separator. Empty cells map to 0.
func parseDecimal(cell, column string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", column, err)
	}
	return v, nil
}
