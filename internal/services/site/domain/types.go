// Package domain holds the browse-path view models
package domain

// Card is one listing tile on the browse grid
type Card struct {
	Row          int    `json:"row"`
	Title        string `json:"title"`
	Region       string `json:"region"`
	Rooms        string `json:"rooms,omitempty"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display"`
	Featured     bool   `json:"featured"`

	// PosterKind is inline, remote or placeholder; PosterURL is empty
	// for placeholder cards
	PosterKind string `json:"poster_kind"`
	PosterURL  string `json:"poster_url,omitempty"`
}

// Detail is the full listing view behind a card
type Detail struct {
	Card
	Description string `json:"description,omitempty"`
	MapsURL     string `json:"maps_url"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Contact carries the operator's channels shown on the detail view
type Contact struct {
	Phone string
	Email string
}

// Poster is a fetched poster image ready to serve
type Poster struct {
	Data        []byte
	ContentType string
	Filename    string
}
