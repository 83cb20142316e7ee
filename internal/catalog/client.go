package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nmehta/leetrack/internal/dataset"
)

// Names of the two catalog documents, resolved relative to the base URL.
const (
	catalogFile = "company_data.json"
	problemFile = "problem_data.json"
)

// Client fetches the catalog documents and per-dataset CSV files from a
// static file server. Dataset files live at "{base}/{company}_{duration}.csv".
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// Catalog fetches and decodes the company catalog document.
func (c *Client) Catalog(ctx context.Context) (*Catalog, error) {
	body, err := c.get(ctx, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &cat, nil
}

// Problems fetches and decodes the problem catalog document.
func (c *Client) Problems(ctx context.Context) (ProblemSet, error) {
	body, err := c.get(ctx, problemFile)
	if err != nil {
		return nil, fmt.Errorf("load problem catalog: %w", err)
	}

	var set ProblemSet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("decode problem catalog: %w", err)
	}
	return set, nil
}

// Dataset fetches and parses one company/duration CSV file.
func (c *Client) Dataset(ctx context.Context, company, duration string) (*dataset.Table, error) {
	name := fmt.Sprintf("%s_%s.csv", company, duration)
	body, err := c.get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", name, err)
	}

	t, err := dataset.Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", name, err)
	}
	return t, nil
}

func (c *Client) get(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+name, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", name, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
