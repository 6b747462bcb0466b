// Package repo parses sheet rows into listings and writes listings back as rows
package repo

import (
	"context"
	"strconv"

	"lettings/internal/platform/logger"
	pstrings "lettings/internal/platform/strings"
	"lettings/internal/services/catalog/domain"
)

// Sheet is the sheet-backed catalog repository
type Sheet struct {
	rows domain.Rows
	log  *logger.Logger
}

// NewSheet builds the repository over a row-store port
func NewSheet(rows domain.Rows) *Sheet {
	if rows == nil {
		panic("catalog repo requires a non nil row store")
	}
	return &Sheet{rows: rows, log: logger.Named("catalog")}
}

// Table returns the raw sheet for the admin table view
func (s *Sheet) Table(ctx context.Context) (domain.Table, error) {
	raw, err := s.rows.ReadAll(ctx, domain.SheetName)
	if err != nil {
		return domain.Table{}, err
	}
	if len(raw) == 0 {
		return domain.Table{Header: domain.Header()}, nil
	}
	return domain.Table{Header: raw[0], Rows: raw[1:]}, nil
}

// ListAll reads the sheet and parses rows into listings in sheet order.
// Columns are addressed by header name; a missing column degrades the
// field, never the list. Only entirely blank rows are dropped, and they
// keep their place in the count so Row stays the true 1-based sheet row.
func (s *Sheet) ListAll(ctx context.Context) ([]domain.Listing, error) {
	raw, err := s.rows.ReadAll(ctx, domain.SheetName)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	cols := columnIndex(raw[0])
	out := make([]domain.Listing, 0, len(raw)-1)
	for i, row := range raw[1:] {
		if blankRow(row) {
			s.log.Debug().Int("row", i+2).Msg("skipping blank row")
			continue
		}
		l := parseRow(cols, row)
		l.Row = i + 2 // 1-based, header is row 1
		out = append(out, l)
	}
	return out, nil
}

// Append writes one listing after the last row, in schema column order
func (s *Sheet) Append(ctx context.Context, l domain.Listing) error {
	return s.rows.Append(ctx, domain.SheetName, l.ToRow())
}

// blankRow reports whether every cell of the row is blank
func blankRow(row []string) bool {
	for _, c := range row {
		if !pstrings.Blank(c) {
			return false
		}
	}
	return true
}

// columnIndex maps folded header names to their position
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[pstrings.Fold(name)] = i
	}
	return cols
}

// cell returns the named column of row, or "" when absent
func cell(cols map[string]int, row []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseRow(cols map[string]int, row []string) domain.Listing {
	return domain.Listing{
		Date:        cell(cols, row, "date"),
		Title:       cell(cols, row, "title"),
		Region:      cell(cols, row, "region"),
		Price:       coercePrice(cell(cols, row, "price")),
		PosterLink:  cell(cols, row, "poster-link"),
		Description: cell(cols, row, "description"),
		Rooms:       cell(cols, row, "rooms"),
		Featured:    coerceFeatured(cell(cols, row, "is_featured")),
	}
}

// coercePrice parses the monthly rent; "£1,200" style values are salvaged
// by digit extraction, anything non-parseable becomes 0
func coercePrice(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	digits := pstrings.Digits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// coerceFeatured maps missing or non-numeric cells to 0 and clamps any
// positive value to 1 so every featured row sorts equally
func coerceFeatured(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return 1
}
