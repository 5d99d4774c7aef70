package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"
)

// maxErrorBody caps how much of a non-2xx response is kept in HTTPStatusError.
const maxErrorBody = 4 << 10

// doRequest performs a single GET request and returns the body.
//
// The body is returned only for 2xx responses and only if it is valid UTF-8.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("iss request", "url", fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("iss response",
			"status", resp.StatusCode,
			"bytes", len(body),
		)
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: fullURL, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("iss response",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if off := invalidUTF8Offset(body); off >= 0 {
		return nil, &DecodeError{Offset: off}
	}

	return body, nil
}

// invalidUTF8Offset returns the offset of the first invalid UTF-8 sequence
// in b, or -1 if b is valid.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
