package sheets_test

import (
	"testing"

	perr "lettings/internal/platform/errors"
	"lettings/internal/platform/store/sheets"
	"lettings/internal/platform/testkit"
)

func TestSpreadsheetIDFromEditURL(t *testing.T) {
	u := "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit#gid=0"
	id, err := sheets.SpreadsheetID(u)
	testkit.MustNoErr(t, err)
	if id != "1AbC-dEf_123" {
		t.Fatalf("expected 1AbC-dEf_123, got %q", id)
	}
}

func TestSpreadsheetIDFromShareURLWithQuery(t *testing.T) {
	u := "https://docs.google.com/spreadsheets/d/1AbC/view?usp=sharing"
	id, err := sheets.SpreadsheetID(u)
	testkit.MustNoErr(t, err)
	if id != "1AbC" {
		t.Fatalf("expected 1AbC, got %q", id)
	}
}

func TestSpreadsheetIDBare(t *testing.T) {
	id, err := sheets.SpreadsheetID("1AbC-dEf_123")
	testkit.MustNoErr(t, err)
	if id != "1AbC-dEf_123" {
		t.Fatalf("expected pass-through, got %q", id)
	}
}

func TestSpreadsheetIDRejectsGarbage(t *testing.T) {
	for _, u := range []string{"", "https://example.com/not-a-sheet", "https://docs.google.com/spreadsheets/d/"} {
		_, err := sheets.SpreadsheetID(u)
		testkit.MustErr(t, err)
		if !perr.IsCode(err, perr.ErrorCodeConfig) {
			t.Fatalf("input %q: expected config error, got %v", u, err)
		}
	}
}
