package domain

import "context"

// Rows is the row-store port the catalog runs against.
// The store moves whole rows; the catalog owns column semantics.
type Rows interface {
	ReadAll(ctx context.Context, sheet string) ([][]string, error)
	Append(ctx context.Context, sheet string, row []string) error
	ReplaceAll(ctx context.Context, sheet string, rows [][]string) error
}

// ReaderPort is the read side exposed to the browse and admin surfaces
type ReaderPort interface {
	ListAll(ctx context.Context) ([]Listing, error)
	Table(ctx context.Context) (Table, error)
}

// WriterPort is the publish side exposed to the admin surface
type WriterPort interface {
	Append(ctx context.Context, d Draft) (Listing, error)
}
