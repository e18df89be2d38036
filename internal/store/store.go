// Package store keeps compiled projects in memory and optionally
// snapshots them to a JSON file so a server restart does not lose work.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ivlev/story2video/internal/project"
)

var ErrNotFound = errors.New("project not found")

// Store is a keyed project collection. Projects are stored as deep
// copies, so callers can keep mutating what they passed in or got back
// without corrupting the stored document.
type Store struct {
	mu    sync.Mutex
	cache *gocache.Cache
	seq   uint64
	path  string
}

// New creates an in-memory store with no snapshot file.
func New() *Store {
	return &Store{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Open creates a store backed by a snapshot file, loading any existing
// snapshot. A missing file is not an error; it appears on first save.
func Open(path string) (*Store, error) {
	s := New()
	s.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var projects []*project.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	for _, p := range projects {
		if p.ID == "" {
			continue
		}
		s.cache.Set(p.ID, p, gocache.NoExpiration)
	}
	return s, nil
}

// Create assigns a fresh ID, stores a copy and returns the ID.
// The caller's project is not modified.
func (s *Store) Create(p *project.Project) (string, error) {
	s.mu.Lock()
	s.seq++
	id := fmt.Sprintf("p-%d-%04d", time.Now().UnixNano(), s.seq)
	s.mu.Unlock()

	cp, err := clone(p)
	if err != nil {
		return "", err
	}
	cp.ID = id
	s.cache.Set(id, cp, gocache.NoExpiration)
	return id, s.snapshot()
}

// Get returns a copy of the stored project.
func (s *Store) Get(id string) (*project.Project, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return clone(v.(*project.Project))
}

// Update replaces the stored document wholesale. The stored ID wins
// over whatever ID the incoming document carries.
func (s *Store) Update(id string, p *project.Project) error {
	if _, ok := s.cache.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	cp, err := clone(p)
	if err != nil {
		return err
	}
	cp.ID = id
	s.cache.Set(id, cp, gocache.NoExpiration)
	return s.snapshot()
}

// Delete removes a project. Deleting an unknown ID is an error so API
// callers can distinguish a typo from a success.
func (s *Store) Delete(id string) error {
	if _, ok := s.cache.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.cache.Delete(id)
	return s.snapshot()
}

// List returns copies of all projects ordered by ID. IDs embed their
// creation timestamp, so this is creation order.
func (s *Store) List() ([]*project.Project, error) {
	items := s.cache.Items()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	projects := make([]*project.Project, 0, len(ids))
	for _, id := range ids {
		cp, err := clone(items[id].Object.(*project.Project))
		if err != nil {
			return nil, err
		}
		projects = append(projects, cp)
	}
	return projects, nil
}

// Count reports how many projects are stored.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// snapshot writes the full collection to the snapshot file, via a temp
// file plus rename so a crash mid-write never truncates the snapshot.
func (s *Store) snapshot() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.List()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// clone round-trips through JSON. Slower than a hand-written deep copy
// but immune to new fields being forgotten.
func clone(p *project.Project) (*project.Project, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	cp := &project.Project{}
	if err := json.Unmarshal(data, cp); err != nil {
		return nil, err
	}
	return cp, nil
}
