// Package catalog wraps the wger exercise API. The app only ever
// issues one read-only query: exercises filtered by muscle identifier.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://wger.de/api/v2"

	// English; the catalog serves every exercise in several languages
	// and would return duplicates without the filter.
	catalogLanguage = "2"
)

// ErrUpstream marks any failure of the external catalog: unreachable
// host, timeout, or a non-success HTTP status.
var ErrUpstream = errors.New("exercise catalog unavailable")

type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type exercisePage struct {
	Results []Exercise `json:"results"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a catalog client. The API key comes from
// configuration and may be empty for unauthenticated access.
func NewClient(baseURL string, apiKey string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// FetchExercises returns the catalog's exercise list for one muscle
// identifier, verbatim. Failures wrap ErrUpstream and are never
// collapsed into an empty result.
func (client *Client) FetchExercises(ctx context.Context, muscleID int) ([]Exercise, error) {
	query := url.Values{}
	query.Set("muscles", strconv.Itoa(muscleID))
	query.Set("language", catalogLanguage)
	endpoint := fmt.Sprintf("%s/exercise/?%s", client.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if client.apiKey != "" {
		req.Header.Set("Authorization", "Token "+client.apiKey)
	}

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	page := exercisePage{}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if page.Results == nil {
		page.Results = []Exercise{}
	}
	return page.Results, nil
}
