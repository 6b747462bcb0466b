// Package sheets wraps the Google Sheets API as the row store.
// It moves whole rows in and out of a named sheet and leaves column
// semantics to the catalog layer.
package sheets

import (
	"context"
	"fmt"
	"strings"

	perr "lettings/internal/platform/errors"
	"lettings/internal/platform/logger"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Config identifies the spreadsheet and the service account used to reach it
type Config struct {
	// SpreadsheetURL is either the full edit URL or a bare spreadsheet id
	SpreadsheetURL string
	// Email is the service-account identity
	Email string
	// PrivateKey is the PEM key with real newlines (config.MustKey restores them)
	PrivateKey string
}

// Client is a row-level view over one spreadsheet
type Client struct {
	svc *gsheets.Service
	id  string
	log *logger.Logger
}

// SpreadsheetID extracts the document id from a docs.google.com URL,
// or returns the input unchanged when it already looks like a bare id
func SpreadsheetID(u string) (string, error) {
	u = strings.TrimSpace(u)
	if u == "" {
		return "", perr.Configf("spreadsheet url is empty")
	}
	if i := strings.Index(u, "/d/"); i >= 0 {
		rest := u[i+len("/d/"):]
		if j := strings.IndexAny(rest, "/?#"); j >= 0 {
			rest = rest[:j]
		}
		if rest == "" {
			return "", perr.Configf("spreadsheet url %q has no document id", u)
		}
		return rest, nil
	}
	if strings.Contains(u, "/") {
		return "", perr.Configf("spreadsheet url %q is not a docs url or bare id", u)
	}
	return u, nil
}

// New dials the Sheets API with a service-account JWT
func New(ctx context.Context, cfg Config) (*Client, error) {
	id, err := SpreadsheetID(cfg.SpreadsheetURL)
	if err != nil {
		return nil, err
	}
	if cfg.Email == "" || cfg.PrivateKey == "" {
		return nil, perr.Configf("sheets service account email and key are required")
	}

	conf := &jwt.Config{
		Email:      cfg.Email,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreUnavailable, "dial sheets api")
	}

	return &Client{svc: svc, id: id, log: logger.Named("sheets")}, nil
}

// ReadAll returns every row of the named sheet, header row included.
// Blank rows come back as empty slices so positions line up with the
// real sheet; callers decide what to drop. There is no pagination.
func (c *Client) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.id, sheet).Context(ctx).Do()
	if err != nil {
		return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStoreUnavailable, "read sheet %s", sheet), "sheets.read")
	}

	out := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = strings.TrimSpace(fmt.Sprint(cell))
		}
		out = append(out, row)
	}
	return out, nil
}

// Append adds one row after the last non-empty row of the sheet.
// This is the publish primitive: unlike a read-modify-replace it cannot
// clobber rows written by another session in between.
func (c *Client) Append(ctx context.Context, sheet string, row []string) error {
	vr := &gsheets.ValueRange{Values: [][]any{toAny(row)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.id, sheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStoreUnavailable, "append to sheet %s", sheet), "sheets.append")
	}
	c.log.Debug().Str("sheet", sheet).Int("cells", len(row)).Msg("row appended")
	return nil
}

// ReplaceAll clears the sheet and writes rows in one pass.
// Last writer wins on the whole sheet; kept for whole-table maintenance.
func (c *Client) ReplaceAll(ctx context.Context, sheet string, rows [][]string) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.id, sheet, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStoreUnavailable, "clear sheet %s", sheet), "sheets.replace")
	}

	vals := make([][]any, 0, len(rows))
	for _, r := range rows {
		vals = append(vals, toAny(r))
	}
	_, err := c.svc.Spreadsheets.Values.Update(c.id, sheet, &gsheets.ValueRange{Values: vals}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeStoreUnavailable, "write sheet %s", sheet), "sheets.replace")
	}
	c.log.Info().Str("sheet", sheet).Int("rows", len(rows)).Msg("sheet replaced")
	return nil
}

// Ping verifies the spreadsheet is reachable with the configured identity
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Get(c.id).Fields("spreadsheetId").Context(ctx).Do()
	return perr.WithOp(perr.WrapIf(err, perr.ErrorCodeStoreUnavailable, "ping spreadsheet"), "sheets.ping")
}

func toAny(row []string) []any {
	out := make([]any, len(row))
	for i, s := range row {
		out[i] = s
	}
	return out
}
