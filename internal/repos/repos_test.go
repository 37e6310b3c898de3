package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func fixture(n int) []map[string]any {
	out := make([]map[string]any, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		lang := []any{"Go", "TypeScript", nil}[i%3]
		out[i] = map[string]any{
			"id":               i + 1,
			"name":             fmt.Sprintf("repo-%d", i),
			"description":      nil,
			"html_url":         fmt.Sprintf("https://github.com/u/repo-%d", i),
			"language":         lang,
			"topics":           []string{"a", "b", "c", "d"},
			"stargazers_count": i,
			"forks_count":      1,
			"fork":             i%5 == 4,
			"updated_at":       base.Add(time.Duration(i%7) * time.Hour).Format(time.RFC3339),
		}
	}
	return out
}

func TestListFiltersAndSorts(t *testing.T) {
	var gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/users/octocat/repos" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("sort") != "updated" {
			t.Errorf("expected sort=updated, got %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(fixture(12))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithToken("tok"))
	repos, err := c.List(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("unexpected accept header %q", gotAccept)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if len(repos) != 10 {
		t.Fatalf("expected 10 non-fork repos, got %d", len(repos))
	}
	for i, r := range repos {
		if r.Fork {
			t.Errorf("fork %s not filtered", r.Name)
		}
		if i > 0 && r.UpdatedAt.After(repos[i-1].UpdatedAt) {
			t.Errorf("repos not sorted by update time at %d", i)
		}
	}
}

func TestListFollowsPages(t *testing.T) {
	var pages []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, p)
		n := 100
		if p == 2 {
			n = 3
		}
		json.NewEncoder(w).Encode(fixture(n))
	}))
	defer srv.Close()

	repos, err := NewClient(WithBaseURL(srv.URL)).List(context.Background(), "u")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pages) != 2 {
		t.Errorf("expected 2 page requests, got %v", pages)
	}
	if len(repos) != 80+3 {
		t.Errorf("expected 83 repos, got %d", len(repos))
	}
}

func TestListErrors(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusForbidden, ErrRateLimited},
		{http.StatusTooManyRequests, ErrRateLimited},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.code)
		}))
		_, err := NewClient(WithBaseURL(srv.URL)).List(context.Background(), "u")
		srv.Close()
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: expected %v, got %v", tt.code, tt.want, err)
		}
		var se *StatusError
		if !errors.As(err, &se) || se.Code != tt.code {
			t.Errorf("status %d: expected StatusError, got %v", tt.code, err)
		}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	_, err := NewClient(WithBaseURL(srv.URL)).List(context.Background(), "u")
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrRateLimited) {
		t.Errorf("unexpected error for 500: %v", err)
	}

	if _, err := NewClient().List(context.Background(), ""); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
}

func TestListBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{"))
	}))
	defer srv.Close()
	if _, err := NewClient(WithBaseURL(srv.URL)).List(context.Background(), "u"); err == nil {
		t.Error("expected decode error")
	}
}

func sample() []Repository {
	return []Repository{
		{Name: "a", Language: "Go"},
		{Name: "b", Language: "Rust"},
		{Name: "c"},
		{Name: "d", Language: "Go"},
	}
}

func TestCategories(t *testing.T) {
	cats := Categories(sample())
	want := []Category{{All, 4}, {"Go", 2}, {"Rust", 1}}
	if len(cats) != len(want) {
		t.Fatalf("expected %v, got %v", want, cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("category %d: expected %v, got %v", i, want[i], cats[i])
		}
	}
}

func TestFilter(t *testing.T) {
	if got := Filter(sample(), All); len(got) != 4 {
		t.Errorf("All should keep everything, got %d", len(got))
	}
	got := Filter(sample(), "Go")
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "d" {
		t.Errorf("unexpected Go filter %v", got)
	}
	if got := Filter(sample(), "Haskell"); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestPaginate(t *testing.T) {
	repos := make([]Repository, 23)
	tests := []struct {
		page                        int
		wantNum, wantStart, wantEnd int
	}{
		{1, 1, 0, 10},
		{2, 2, 10, 20},
		{3, 3, 20, 23},
		{9, 3, 20, 23},
		{0, 1, 0, 10},
	}
	for _, tt := range tests {
		p := Paginate(repos, tt.page, 10)
		if p.Number != tt.wantNum || p.Start != tt.wantStart || p.End != tt.wantEnd {
			t.Errorf("page %d: got %+v", tt.page, p)
		}
		if p.TotalPages != 3 || p.Total != 23 || len(p.Items) != p.End-p.Start {
			t.Errorf("page %d: inconsistent page %+v", tt.page, p)
		}
	}

	p := Paginate(nil, 1, 10)
	if p.TotalPages != 0 || len(p.Items) != 0 || p.HasNext() || p.HasPrev() {
		t.Errorf("unexpected empty page %+v", p)
	}
	if p := Paginate(repos, 2, 10); !p.HasPrev() || !p.HasNext() {
		t.Error("middle page should have prev and next")
	}
}

func TestTopTopics(t *testing.T) {
	r := Repository{Topics: []string{"a", "b", "c", "d"}}
	if got := r.TopTopics(3); len(got) != 3 {
		t.Errorf("expected 3 topics, got %v", got)
	}
	if got := (Repository{}).TopTopics(3); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

type countingTransport struct {
	next  http.RoundTripper
	count int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.count++
	return c.next.RoundTrip(req)
}

func TestListUsesHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fixture(3))
	}))
	defer srv.Close()

	tr := &countingTransport{next: srv.Client().Transport}
	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(&http.Client{Transport: tr}))
	if _, err := c.List(context.Background(), "u"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if tr.count != 1 {
		t.Errorf("expected 1 request through the custom client, got %d", tr.count)
	}
}
