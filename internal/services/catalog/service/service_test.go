package service_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"lettings/internal/platform/clock"
	"lettings/internal/services/catalog/domain"
	"lettings/internal/services/catalog/service"
)

type fakeRows struct {
	data     [][]string
	appended [][]string
}

func (f *fakeRows) ReadAll(context.Context, string) ([][]string, error) { return f.data, nil }

func (f *fakeRows) Append(_ context.Context, _ string, row []string) error {
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeRows) ReplaceAll(_ context.Context, _ string, rows [][]string) error {
	f.data = rows
	return nil
}

func listing(title, region, rooms string, price, featured int, date string) domain.Listing {
	return domain.Listing{Title: title, Region: region, Rooms: rooms, Price: price, Featured: featured, Date: date}
}

func titles(ls []domain.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Title
	}
	return out
}

func TestFilterByRegion(t *testing.T) {
	ls := []domain.Listing{
		listing("a", "West London", "1-bed", 1500, 0, "2026-01-01"),
		listing("b", "East London", "1-bed", 1500, 0, "2026-01-02"),
		listing("c", "West London", "2-bed", 2000, 0, "2026-01-03"),
	}
	got := service.Filter(ls, domain.FilterInput{Regions: []string{"West London"}})
	if want := []string{"c", "a"}; !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("expected %v, got %v", want, titles(got))
	}
}

func TestFilterPriceCeiling(t *testing.T) {
	ls := []domain.Listing{
		listing("cheap", "Other", "", 1500, 0, "2026-01-01"),
		listing("mid", "Other", "", 3000, 0, "2026-01-02"),
		listing("dear", "Other", "", 9000, 0, "2026-01-03"),
	}
	got := service.Filter(ls, domain.FilterInput{MaxPrice: 3000})
	if len(got) != 2 {
		t.Fatalf("expected 2 listings at or under 3000, got %v", titles(got))
	}
	for _, l := range got {
		if l.Price > 3000 {
			t.Fatalf("listing %q over ceiling: %d", l.Title, l.Price)
		}
	}
}

func TestFilterRegionMatchIsCaseInsensitive(t *testing.T) {
	ls := []domain.Listing{listing("a", "West London", "", 1000, 0, "2026-01-01")}
	got := service.Filter(ls, domain.FilterInput{Regions: []string{"west london"}})
	if len(got) != 1 {
		t.Fatalf("expected case-insensitive region match, got %v", titles(got))
	}
}

func TestFilterCombinesCriteria(t *testing.T) {
	ls := []domain.Listing{
		listing("keep", "East London", "2-bed", 2000, 0, "2026-01-01"),
		listing("wrong rooms", "East London", "1-bed", 2000, 0, "2026-01-02"),
		listing("too dear", "East London", "2-bed", 5000, 0, "2026-01-03"),
		listing("wrong region", "West London", "2-bed", 2000, 0, "2026-01-04"),
	}
	got := service.Filter(ls, domain.FilterInput{
		Regions:  []string{"East London"},
		Rooms:    []string{"2-bed"},
		MaxPrice: 2500,
	})
	if want := []string{"keep"}; !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("expected %v, got %v", want, titles(got))
	}
}

func TestSortFeaturedFirstThenNewest(t *testing.T) {
	ls := []domain.Listing{
		listing("old plain", "Other", "", 1000, 0, "2026-01-01"),
		listing("new plain", "Other", "", 1000, 0, "2026-03-01"),
		listing("old star", "Other", "", 1000, 1, "2026-01-01"),
		listing("new star", "Other", "", 1000, 1, "2026-03-01"),
	}
	service.Sort(ls)
	want := []string{"new star", "old star", "new plain", "old plain"}
	if !reflect.DeepEqual(titles(ls), want) {
		t.Fatalf("expected %v, got %v", want, titles(ls))
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	ls := []domain.Listing{
		listing("first", "Other", "", 1000, 1, "2026-01-01"),
		listing("second", "Other", "", 1000, 1, "2026-01-01"),
		listing("third", "Other", "", 1000, 1, "2026-01-01"),
	}
	service.Sort(ls)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(titles(ls), want) {
		t.Fatalf("ties must keep sheet order, got %v", titles(ls))
	}
}

func TestFilterEmptyInputEqualsCanonicalOrder(t *testing.T) {
	ls := []domain.Listing{
		listing("plain", "Other", "", 1000, 0, "2026-02-01"),
		listing("star", "Other", "", 1000, 1, "2026-01-01"),
	}
	sorted := make([]domain.Listing, len(ls))
	copy(sorted, ls)
	service.Sort(sorted)

	got := service.Filter(ls, domain.FilterInput{})
	if !reflect.DeepEqual(got, sorted) {
		t.Fatalf("empty filter must equal canonical ordering:\n got %v\nwant %v", titles(got), titles(sorted))
	}
}

func TestFacets(t *testing.T) {
	ls := []domain.Listing{
		listing("a", "West London", "2-bed", 1500, 0, "2026-01-01"),
		listing("b", "East London", "1-bed", 2000, 0, "2026-01-02"),
		listing("c", "West London", "", 2500, 0, "2026-01-03"),
		listing("d", "Narnia", "2-bed", 3000, 0, "2026-01-04"),
	}
	f := service.Facets(ls)
	if want := []string{"East London", "Narnia", "West London"}; !reflect.DeepEqual(f.Regions, want) {
		t.Fatalf("expected regions %v, got %v", want, f.Regions)
	}
	if want := []string{"1-bed", "2-bed"}; !reflect.DeepEqual(f.Rooms, want) {
		t.Fatalf("expected rooms %v, got %v", want, f.Rooms)
	}
	if f.PriceFloor != domain.PriceFloorGBP || f.PriceCeiling != domain.PriceCeilingGBP {
		t.Fatalf("unexpected price bounds: %+v", f)
	}
}

func TestAppendStampsToday(t *testing.T) {
	rows := &fakeRows{}
	now := clock.Fixed(time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC))
	svc := service.New(rows, now)

	got, err := svc.Append(context.Background(), domain.Draft{
		Title:       "Lexington Gardens",
		Region:      "West London",
		Price:       3358,
		PosterLink:  "https://img.test/a.jpg",
		Description: "Bright two-bed",
		Rooms:       "2-bed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2026-08-29" {
		t.Fatalf("expected stamped date 2026-08-29, got %q", got.Date)
	}
	if got.Featured != 0 {
		t.Fatalf("new listings must not be featured, got %d", got.Featured)
	}
	if len(rows.appended) != 1 {
		t.Fatalf("expected a single appended row, got %d", len(rows.appended))
	}
	if rows.appended[0][0] != "2026-08-29" || rows.appended[0][1] != "Lexington Gardens" {
		t.Fatalf("appended row mismatch: %#v", rows.appended[0])
	}
}

func TestAppendThenListRoundTrip(t *testing.T) {
	rows := &fakeRows{data: [][]string{
		{"date", "title", "region", "price", "poster-link", "description", "rooms", "is_featured"},
	}}
	now := clock.Fixed(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	svc := service.New(rows, now)

	l, err := svc.Append(context.Background(), domain.Draft{Title: "Mare Street Loft", Region: "East London", Price: 2100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows.data = append(rows.data, l.ToRow())

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(got))
	}
	if got[0].Title != "Mare Street Loft" || got[0].Price != 2100 || got[0].Date != "2026-08-29" {
		t.Fatalf("round trip mismatch: %+v", got[0])
	}
}
