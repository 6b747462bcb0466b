// Package domain holds the listing schema shared by the admin and site surfaces
package domain

import (
	"strconv"
	"strings"
)

// SheetName is the sheet the catalog lives on
const SheetName = "Sheet1"

// Browse price slider bounds in GBP per month
const (
	PriceFloorGBP   = 1000
	PriceCeilingGBP = 15000
)

// header is the stable column order of the sheet; the catalog addresses
// columns by header name so operator reordering does not break parsing
var header = []string{
	"date",
	"title",
	"region",
	"price",
	"poster-link",
	"description",
	"rooms",
	"is_featured",
}

// Header returns the schema column names in sheet order
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// Listing is one property advertisement row
type Listing struct {
	// Row is the 1-based sheet row; stable handle for the detail view
	Row         int    `json:"row"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Region      string `json:"region"`
	Price       int    `json:"price"`
	PosterLink  string `json:"poster_link"`
	Description string `json:"description"`
	Rooms       string `json:"rooms"`
	Featured    int    `json:"is_featured"`
}

// ToRow renders the listing in schema column order
func (l Listing) ToRow() []string {
	featured := ""
	if l.Featured != 0 {
		featured = "1"
	}
	return []string{
		l.Date,
		l.Title,
		l.Region,
		strconv.Itoa(l.Price),
		l.PosterLink,
		l.Description,
		l.Rooms,
		featured,
	}
}

// Draft is a listing before the catalog stamps its date
type Draft struct {
	Title       string
	Region      string
	Price       int
	PosterLink  string
	Description string
	Rooms       string
}

// Table is the raw sheet content for the admin table view
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// FilterInput narrows a browse; empty sets leave that field unconstrained
type FilterInput struct {
	Regions  []string `json:"regions"`
	Rooms    []string `json:"rooms"`
	MaxPrice int      `json:"max_price"`
}

// Facets feed the browse filter widgets from observed data
type Facets struct {
	Regions      []string `json:"regions"`
	Rooms        []string `json:"rooms"`
	PriceFloor   int      `json:"price_floor"`
	PriceCeiling int      `json:"price_ceiling"`
	PriceDefault int      `json:"price_default"`
}

// PosterKind classifies what the poster-link cell actually holds
type PosterKind string

// Poster encodings accepted in poster-link; anything else degrades to a placeholder
const (
	PosterInline      PosterKind = "inline" // RFC 2397 data URL
	PosterRemote      PosterKind = "remote" // http(s) URL
	PosterPlaceholder PosterKind = "placeholder"
)

// PosterKindOf never errors: blank cells and date-like garbage from a
// schema misalignment must not take down a card
func PosterKindOf(link string) PosterKind {
	switch {
	case strings.HasPrefix(link, "data:image"):
		return PosterInline
	case strings.HasPrefix(link, "http"):
		return PosterRemote
	default:
		return PosterPlaceholder
	}
}
