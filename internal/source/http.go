package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

// pageEnvelope is the paged JSON shape served by `gridview serve` and
// compatible APIs: one page of items plus the page numbers the remote
// owner needs.
type pageEnvelope struct {
	Items      []dataview.Row `json:"items"`
	Columns    []string       `json:"columns,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
}

func defaultClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// HTTP returns a source that fetches records from a JSON endpoint. The
// response may be a plain array of objects or a page envelope; both
// normalize to a Result.
func HTTP(client *http.Client, endpoint string) Func {
	if client == nil {
		client = defaultClient()
	}
	return func(ctx context.Context) (Result, error) {
		return fetchJSON(ctx, client, endpoint)
	}
}

// Paged is a remote-pagination source: the server slices and orders the
// rows, this side only asks for a page. SetPage is called by the view's
// page-change callback before the next refetch.
type Paged struct {
	client   *http.Client
	endpoint string

	mu   sync.Mutex
	page int // zero-based
}

// NewPaged builds a paged source for the given endpoint.
func NewPaged(client *http.Client, endpoint string) *Paged {
	if client == nil {
		client = defaultClient()
	}
	return &Paged{client: client, endpoint: endpoint}
}

// SetPage records the zero-based page for the next fetch.
func (p *Paged) SetPage(page int) {
	p.mu.Lock()
	if page >= 0 {
		p.page = page
	}
	p.mu.Unlock()
}

// Fetch loads the current page. The result always reports Paged so the
// view stays in remote mode even when the server omits page numbers.
func (p *Paged) Fetch(ctx context.Context) (Result, error) {
	p.mu.Lock()
	page := p.page
	p.mu.Unlock()

	u, err := url.Parse(p.endpoint)
	if err != nil {
		return Result{}, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	res, err := fetchJSON(ctx, p.client, u.String())
	if err != nil {
		return Result{}, err
	}
	res.Paged = true
	return res, nil
}

func fetchJSON(ctx context.Context, client *http.Client, endpoint string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	// A page envelope carries its rows under "items"; anything else is
	// treated as a plain array of records.
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Items != nil {
		return Result{
			Rows:       env.Items,
			Columns:    env.Columns,
			Paged:      true,
			Page:       env.Page,
			TotalPages: env.TotalPages,
			Total:      env.Total,
		}, nil
	}

	var rows []dataview.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return Result{Rows: rows, Total: len(rows)}, nil
}
