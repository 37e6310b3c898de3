package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.github.com"
	perPage        = 100
	// MaxPages bounds how many API pages a single List follows.
	MaxPages = 10
)

// Repository is a public repository as listed on the projects panel.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
	Fork        bool      `json:"fork"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(u string) ClientOption { return func(c *Client) { c.baseURL = u } }

// WithToken authenticates requests, raising the API quota.
func WithToken(tok string) ClientOption { return func(c *Client) { c.token = tok } }

func WithHTTPClient(h *http.Client) ClientOption { return func(c *Client) { c.http = h } }

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches a user's repositories, drops forks and orders them most recently
// updated first.
func (c *Client) List(ctx context.Context, username string) ([]Repository, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	var all []Repository
	for page := 1; page <= MaxPages; page++ {
		batch, err := c.fetchPage(ctx, username, page)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}

	out := make([]Repository, 0, len(all))
	for _, r := range all {
		if !r.Fork {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, username string, page int) ([]Repository, error) {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repos: fetch %s: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	var batch []Repository
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("repos: decode page %d: %w", page, err)
	}
	return batch, nil
}
