// Package quote fetches a quote of the day. The fetch is strictly
// best-effort: any failure quietly falls back to a built-in placeholder, the
// application never surfaces quote errors.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultURL serves random quotes as {"content": ..., "author": ...}.
const DefaultURL = "https://api.quotable.io/random"

const fetchTimeout = 5 * time.Second

// Quote is one displayable quotation.
type Quote struct {
	Text   string `json:"content"`
	Author string `json:"author"`
}

func (q Quote) String() string {
	if q.Author == "" {
		return fmt.Sprintf("“%s”", q.Text)
	}
	return fmt.Sprintf("“%s” — %s", q.Text, q.Author)
}

// Placeholder is shown whenever the fetch fails.
var Placeholder = Quote{
	Text:   "The secret of getting ahead is getting started.",
	Author: "Mark Twain",
}

// Fetcher retrieves the daily quote.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// Daily returns today's quote, or the placeholder when the endpoint is
// unreachable, errors, or returns something unusable.
func (f Fetcher) Daily(ctx context.Context) Quote {
	url := f.URL
	if url == "" {
		url = DefaultURL
	}
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Placeholder
	}
	resp, err := client.Do(req)
	if err != nil {
		return Placeholder
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Placeholder
	}

	var q Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return Placeholder
	}
	if q.Text == "" {
		return Placeholder
	}
	return q
}
