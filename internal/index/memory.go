package index

import (
	"sync"
	"time"

	"github.com/Pesteves2002/tomase-website/internal/domain"
)

// Snapshot is one consistent view of the site content.
type Snapshot struct {
	Links      []domain.LinkEntry
	Profile    domain.Profile
	Source     string    // "builtin" or the links file path
	LastReload time.Time // zero until the first Update
}

// MemoryIndex holds the current link directory and profile.
// Readers always get a full snapshot from a single Update, never a mix of two.
type MemoryIndex struct {
	mu         sync.RWMutex
	links      []domain.LinkEntry
	profile    domain.Profile
	source     string
	lastReload time.Time
	now        func() time.Time
}

// NewMemoryIndex creates an empty index with the default profile
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		profile: domain.DefaultProfile(),
		now:     time.Now,
	}
}

// Update replaces the link directory and profile. The slice is copied, so the
// caller may reuse it.
func (idx *MemoryIndex) Update(links []domain.LinkEntry, profile domain.Profile, source string) {
	cp := make([]domain.LinkEntry, len(links))
	copy(cp, links)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.links = cp
	idx.profile = profile
	idx.source = source
	idx.lastReload = idx.now()
}

// Links returns a copy of the link directory in display order
func (idx *MemoryIndex) Links() []domain.LinkEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.LinkEntry, len(idx.links))
	copy(out, idx.links)
	return out
}

// Profile returns the current profile
func (idx *MemoryIndex) Profile() domain.Profile {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.profile
}

// Snapshot returns links, profile and reload metadata together
func (idx *MemoryIndex) Snapshot() Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	links := make([]domain.LinkEntry, len(idx.links))
	copy(links, idx.links)
	return Snapshot{
		Links:      links,
		Profile:    idx.profile,
		Source:     idx.source,
		LastReload: idx.lastReload,
	}
}

// Count returns the number of links in the index
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.links)
}

// GetLastReload returns the timestamp of the last update
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
