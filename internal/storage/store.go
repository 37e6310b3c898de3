package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/folio/internal/repos"
)

var (
	// ErrInvalidName indicates a username that cannot name a cache directory.
	ErrInvalidName = errors.New("storage: invalid username")

	// ErrNotCached indicates no snapshot exists for a username.
	ErrNotCached = errors.New("storage: not cached")
)

// Store keeps one snapshot of each user's repository listing on disk:
// <base>/<username>/metadata.json and repos.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Snapshot struct {
	Username  string         `json:"username"`
	FetchedAt time.Time      `json:"fetched_at"`
	Count     int            `json:"count"`
	Languages map[string]int `json:"languages"`
}

func (s *Store) dir(username string) (string, error) {
	if username == "" || username != filepath.Base(username) || strings.HasPrefix(username, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, username)
	}
	return filepath.Join(s.baseDir, username), nil
}

func (s *Store) Save(username string, list []repos.Repository, now time.Time) (*Snapshot, error) {
	dir, err := s.dir(username)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	langs := make(map[string]int)
	for _, c := range repos.Categories(list)[1:] {
		langs[c.Name] = c.Count
	}
	meta := &Snapshot{Username: username, FetchedAt: now.UTC(), Count: len(list), Languages: langs}

	if err := writeJSON(filepath.Join(dir, "repos.json"), list); err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// writeJSON replaces path atomically: the document is written to a temp file in
// the same directory and renamed over path.
func writeJSON(path string, v any) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotCached
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// List returns every snapshot, most recent first. Unreadable entries are skipped.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var meta Snapshot
		if err := readJSON(filepath.Join(s.baseDir, entry.Name(), "metadata.json"), &meta); err != nil {
			continue
		}
		snaps = append(snaps, meta)
	}
	sort.SliceStable(snaps, func(i, j int) bool { return snaps[i].FetchedAt.After(snaps[j].FetchedAt) })
	return snaps, nil
}

func (s *Store) Load(username string) (*Snapshot, error) {
	dir, err := s.dir(username)
	if err != nil {
		return nil, err
	}
	var meta Snapshot
	if err := readJSON(filepath.Join(dir, "metadata.json"), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadRepos(username string) ([]repos.Repository, error) {
	dir, err := s.dir(username)
	if err != nil {
		return nil, err
	}
	var list []repos.Repository
	if err := readJSON(filepath.Join(dir, "repos.json"), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Lister is the upstream a Cached fetcher falls through to.
type Lister interface {
	List(ctx context.Context, username string) ([]repos.Repository, error)
}

// Cached serves listings from the store while they are younger than TTL and
// falls back to a stale snapshot when the upstream fails.
type Cached struct {
	store    *Store
	upstream Lister
	ttl      time.Duration
	now      func() time.Time
}

func (s *Store) Cached(upstream Lister, ttl time.Duration) *Cached {
	return &Cached{store: s, upstream: upstream, ttl: ttl, now: time.Now}
}

// List treats an unreadable snapshot as missing and logs it.
func (c *Cached) List(ctx context.Context, username string) ([]repos.Repository, error) {
	meta, err := c.store.Load(username)
	switch {
	case errors.Is(err, ErrInvalidName):
		return nil, err
	case errors.Is(err, ErrNotCached):
	case err != nil:
		log.Printf("storage: %s: ignoring unreadable snapshot: %v", username, err)
		meta = nil
	}

	if meta != nil && c.ttl > 0 && c.now().Sub(meta.FetchedAt) < c.ttl {
		list, err := c.store.LoadRepos(username)
		if err == nil {
			return list, nil
		}
		log.Printf("storage: %s: ignoring unreadable listing: %v", username, err)
	}

	list, err := c.upstream.List(ctx, username)
	if err != nil {
		if meta == nil {
			return nil, err
		}
		cached, lerr := c.store.LoadRepos(username)
		if lerr != nil {
			return nil, err
		}
		log.Printf("storage: %s: serving snapshot from %s: %v", username, meta.FetchedAt.Format(time.RFC3339), err)
		return cached, nil
	}
	if _, err := c.store.Save(username, list, c.now()); err != nil {
		log.Printf("storage: %s: save snapshot: %v", username, err)
	}
	return list, nil
}

// WriteCSV writes one row per repository with a header.
func WriteCSV(w io.Writer, list []repos.Repository) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "language", "stars", "forks", "updated", "topics", "url", "description"}); err != nil {
		return err
	}
	for _, r := range list {
		row := []string{
			r.Name,
			r.Language,
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			r.UpdatedAt.Format(time.DateOnly),
			strings.Join(r.Topics, ";"),
			r.URL,
			r.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, list []repos.Repository) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
