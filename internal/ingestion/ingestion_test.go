package ingestion

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ridepulse/ridepulse/internal/domain/models"
	"github.com/ridepulse/ridepulse/internal/storage"
)

// fakeRepoIngestion implements minimal TripsRepository for ProcessDirectory tests.
type fakeRepoIngestion struct {
	has      map[time.Time]bool
	inserted int
	deleted  map[time.Time]bool
}

func (f *fakeRepoIngestion) InsertTripsBatch(trips []models.Trip) error {
	f.inserted += len(trips)
	return nil
}
func (f *fakeRepoIngestion) ListTrips(context.Context) ([]models.Trip, error) { return nil, nil }
func (f *fakeRepoIngestion) HasIngestionForDate(date time.Time) (bool, error) {
	return f.has[date], nil
}
func (f *fakeRepoIngestion) UpsertIngestionLog(date time.Time, filename string, rowCount int) error {
	if f.has == nil {
		f.has = map[time.Time]bool{}
	}
	f.has[date] = true
	return nil
}
func (f *fakeRepoIngestion) DeleteTripsByDate(date time.Time) error {
	if f.deleted == nil {
		f.deleted = map[time.Time]bool{}
	}
	f.deleted[date] = true
	return nil
}

// dummyDB satisfies *sql.DB usage but is nil internally; we never call db methods directly in tests due to repoCtor override.
func dummyDB() *sql.DB { return (*sql.DB)(nil) }

func writeFile(t *testing.T, dir, name string, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// daily export with valid header and 2 rows
func sampleFile() string {
	return "id;data;preco_total;lucro_liquido;custo_total_combustivel;tempo_total_min;distancia_total_km\n" +
		"trip-a;2025-09-18T10:00:00Z;45,0;30,0;8,0;35;12,0\n" +
		"trip-b;2025-09-18T14:30:00Z;60,0;42,0;11,0;48;18,5\n"
}

func TestLastNDays(t *testing.T) {
	ref := time.Date(2025, 9, 18, 23, 15, 0, 0, time.UTC)
	days := LastNDays(3, ref)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	want := []time.Time{
		time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC),
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Fatalf("day %d: want %v got %v", i, want[i], days[i])
		}
	}

	// weekends are ordinary working days for drivers
	sunday := time.Date(2025, 9, 14, 12, 0, 0, 0, time.UTC)
	if d := LastNDays(1, sunday)[0]; d.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday kept, got %v", d.Weekday())
	}

	if got := LastNDays(0, ref); len(got) != 1 {
		t.Fatalf("n<1 should clamp to 1, got %d days", len(got))
	}
}

func TestProcessDirectory_SkipIfAlreadyIngested(t *testing.T) {
	dir := t.TempDir()
	today := time.Now()
	days := LastNDays(1, today)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	dayUTC := time.Date(days[0].Year(), days[0].Month(), days[0].Day(), 0, 0, 0, 0, time.UTC)
	fname := days[0].Format(fileDateLayout) + fileSuffix
	writeFile(t, dir, fname, sampleFile())

	fr := &fakeRepoIngestion{has: map[time.Time]bool{dayUTC: true}}
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.TripsRepository { return fr }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, dummyDB(), 1, runtime.NumCPU(), false); err != nil {
		t.Fatalf("ProcessDirectory err: %v", err)
	}
	if fr.inserted != 0 {
		t.Fatalf("expected no inserts when already ingested, got %d", fr.inserted)
	}
}

func TestProcessDirectory_ForceReprocess(t *testing.T) {
	dir := t.TempDir()
	today := time.Now()
	days := LastNDays(1, today)
	dayUTC := time.Date(days[0].Year(), days[0].Month(), days[0].Day(), 0, 0, 0, 0, time.UTC)
	fname := days[0].Format(fileDateLayout) + fileSuffix
	writeFile(t, dir, fname, sampleFile())

	fr := &fakeRepoIngestion{has: map[time.Time]bool{dayUTC: true}}
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.TripsRepository { return fr }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, dummyDB(), 1, 1, true); err != nil {
		t.Fatalf("ProcessDirectory err: %v", err)
	}
	if !fr.deleted[dayUTC] {
		t.Fatalf("expected delete for %v", dayUTC)
	}
	if fr.inserted != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", fr.inserted)
	}
}

// minimal fake repo to inject specific errors
type errRepo struct {
	hasErr    error
	upsertErr error
}

func (e *errRepo) InsertTripsBatch([]models.Trip) error             { return nil }
func (e *errRepo) ListTrips(context.Context) ([]models.Trip, error) { return nil, nil }
func (e *errRepo) HasIngestionForDate(time.Time) (bool, error) {
	if e.hasErr != nil {
		return false, e.hasErr
	}
	return false, nil
}
func (e *errRepo) UpsertIngestionLog(time.Time, string, int) error { return e.upsertErr }
func (e *errRepo) DeleteTripsByDate(time.Time) error               { return nil }

func TestProcessDirectory_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	// no files created => should report missing
	err := ProcessDirectory(context.Background(), dir, (*sql.DB)(nil), 1, runtime.NumCPU(), false)
	if err == nil || !strings.Contains(err.Error(), "missing required files") {
		t.Fatalf("expected missing files error, got %v", err)
	}
}

func TestProcessDirectory_HasIngestionError(t *testing.T) {
	dir := t.TempDir()
	// create expected file for the current day
	d := LastNDays(1, time.Now())[0]
	fname := d.Format(fileDateLayout) + fileSuffix
	path := filepath.Join(dir, fname)
	// minimal valid content (header only)
	content := "id;data;preco_total;lucro_liquido;custo_total_combustivel;tempo_total_min;distancia_total_km\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.TripsRepository { return &errRepo{hasErr: context.DeadlineExceeded} }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, (*sql.DB)(nil), 1, 1, false); err == nil {
		t.Fatalf("expected error from HasIngestionForDate")
	}
}

func TestProcessDirectory_UpsertLogError(t *testing.T) {
	dir := t.TempDir()
	d := LastNDays(1, time.Now())[0]
	fname := d.Format(fileDateLayout) + fileSuffix
	path := filepath.Join(dir, fname)
	// valid file with one row
	content := "id;data;preco_total;lucro_liquido;custo_total_combustivel;tempo_total_min;distancia_total_km\n" +
		"trip-x;" + d.Format(time.RFC3339) + ";10,0;7,0;2,0;30;10,0\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.TripsRepository { return &errRepo{upsertErr: context.Canceled} }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, (*sql.DB)(nil), 1, 1, false); err == nil {
		t.Fatalf("expected error from UpsertIngestionLog")
	}
}
