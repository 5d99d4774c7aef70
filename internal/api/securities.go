package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// boardSecuritiesPath returns the path of the board securities endpoint.
func boardSecuritiesPath() string {
	return "/engines/" + Engine + "/markets/" + Market + "/boards/" + Board + "/securities.json"
}

// BoardSecuritiesQuery builds the query string for a board securities request.
func BoardSecuritiesQuery(opts BoardSecuritiesOptions) url.Values {
	query := url.Values{}

	if len(opts.Securities) > 0 {
		query.Set("securities", strings.Join(opts.Securities, ","))
	}
	query.Set("iss.only", opts.Section)
	query.Set("iss.dp", "comma")
	query.Set("iss.meta", "off")
	if len(opts.Columns) > 0 {
		query.Set(opts.Section+".columns", strings.Join(opts.Columns, ","))
	}

	return query
}

// FetchBoardSecurities performs the request and returns the raw JSON body.
func (c *Client) FetchBoardSecurities(ctx context.Context, opts BoardSecuritiesOptions) ([]byte, error) {
	if opts.Section == "" {
		return nil, errors.New("board securities: section is required")
	}

	body, err := c.doRequest(ctx, boardSecuritiesPath(), BoardSecuritiesQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("get board securities %s: %w", opts.Section, err)
	}
	return body, nil
}

// GetBoardSecurities fetches one section of the board securities endpoint
// and decodes it into a Table.
func (c *Client) GetBoardSecurities(ctx context.Context, opts BoardSecuritiesOptions) (*Table, error) {
	body, err := c.FetchBoardSecurities(ctx, opts)
	if err != nil {
		return nil, err
	}

	table, err := DecodeTable(body, opts.Section)
	if err != nil {
		return nil, fmt.Errorf("get board securities %s: %w", opts.Section, err)
	}
	return table, nil
}
