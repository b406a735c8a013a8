package memory_test

import (
	"context"
	"testing"
	"time"

	"weathervane/internal/adapter/memory"
	"weathervane/internal/domain"
)

func intPtr(v int) *int { return &v }

func seed(t *testing.T, db *memory.DB, n int) []domain.WeatherObservation {
	t.Helper()
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.WeatherObservation, 0, n)
	for i := 0; i < n; i++ {
		obs, err := db.Insert(context.Background(), domain.WeatherObservation{
			CollectionTime: base.Add(time.Duration(i) * time.Hour),
			Temperature:    intPtr(20 + i),
			CreateDate:     base,
			UpdateDate:     base,
		})
		if err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		out = append(out, obs)
	}
	return out
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	db := memory.New()
	rows := seed(t, db, 3)
	for i, r := range rows {
		if r.ID != int64(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, r.ID)
		}
	}
}

func TestFindByID_RoundTrip(t *testing.T) {
	db := memory.New()
	rows := seed(t, db, 1)

	got, err := db.FindByID(context.Background(), rows[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected row")
	}
	if !got.CollectionTime.Equal(rows[0].CollectionTime) || *got.Temperature != 20 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.TemperatureMin != nil {
		t.Fatal("unset field should read back as nil")
	}
}

func TestFindByID_Absent(t *testing.T) {
	db := memory.New()
	got, err := db.FindByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestFindPage_OrderAndSlicing(t *testing.T) {
	db := memory.New()
	seed(t, db, 5)

	page, err := db.FindPage(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(page))
	}
	for i := 1; i < len(page); i++ {
		if page[i].CollectionTime.After(page[i-1].CollectionTime) {
			t.Fatal("rows must be ordered by collection time descending")
		}
	}
	// newest row first
	if *page[0].Temperature != 24 {
		t.Fatalf("expected newest row first, got temperature %d", *page[0].Temperature)
	}

	rest, err := db.FindPage(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 remaining rows, got %d", len(rest))
	}
}

func TestFindPage_BeyondEnd(t *testing.T) {
	db := memory.New()
	seed(t, db, 2)

	page, err := db.FindPage(context.Background(), 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page == nil || len(page) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", page)
	}
}

func TestReplace_PreservesCreateDate(t *testing.T) {
	db := memory.New()
	rows := seed(t, db, 1)

	later := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	updated, err := db.Replace(context.Background(), rows[0].ID, domain.WeatherObservation{
		CollectionTime: rows[0].CollectionTime,
		Temperature:    intPtr(30),
		CreateDate:     later, // must be ignored
		UpdateDate:     later,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated row")
	}
	if !updated.CreateDate.Equal(rows[0].CreateDate) {
		t.Fatal("create_date must not change on replace")
	}
	if !updated.UpdateDate.Equal(later) {
		t.Fatal("update_date must be taken from the replacement row")
	}
	if *updated.Temperature != 30 {
		t.Fatalf("expected temperature 30, got %d", *updated.Temperature)
	}
}

func TestReplace_Absent(t *testing.T) {
	db := memory.New()
	updated, err := db.Replace(context.Background(), 42, domain.WeatherObservation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != nil {
		t.Fatal("expected nil for absent id")
	}
}

func TestDelete(t *testing.T) {
	db := memory.New()
	rows := seed(t, db, 1)

	ok, err := db.Delete(context.Background(), rows[0].ID)
	if err != nil || !ok {
		t.Fatalf("expected delete to succeed, ok=%v err=%v", ok, err)
	}

	got, err := db.FindByID(context.Background(), rows[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("row should be gone after delete")
	}

	ok, err = db.Delete(context.Background(), rows[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("second delete must report not found")
	}
}
