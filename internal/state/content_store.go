package state

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/rs/zerolog"
)

// KeyContents is the durable-store key for the content collection
const KeyContents = "appContents"

// RecentDraftsLimit bounds the "recent drafts" derived view
const RecentDraftsLimit = 5

// ContentStore owns the content collection. All state lives in memory and is
// mirrored write-through into the durable store on every mutation; persist
// failures are logged and the in-memory mutation stands until restart.
type ContentStore struct {
	base
	contents []models.Content
	current  *models.Content // transient editor selection, never persisted
}

// NewContentStore creates an unhydrated content store
func NewContentStore(kv kvstore.Store, log zerolog.Logger) *ContentStore {
	return &ContentStore{base: newBase(kv, log, "contents")}
}

// Load hydrates the collection from the durable store, falling back to the
// seed dataset when the key is absent or holds unparsable JSON
func (s *ContentStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.contents = models.SeedContents()

	raw, ok := s.get(ctx, KeyContents)
	if !ok {
		return
	}
	var contents []models.Content
	if err := json.Unmarshal([]byte(raw), &contents); err != nil {
		s.log.Error().Err(err).Str("key", KeyContents).Msg("Corrupt stored contents, using seed data")
		return
	}
	s.contents = contents
}

// All returns every content item regardless of status
func (s *ContentStore) All() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Content(nil), s.contents...)
}

// Drafts returns all drafts ordered by most recently updated first
func (s *ContentStore) Drafts() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var drafts []models.Content
	for _, c := range s.contents {
		if c.Status == models.ContentStatusDraft {
			drafts = append(drafts, c)
		}
	}
	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})
	return drafts
}

// RecentDrafts returns the bounded "recent drafts" view: the most recently
// updated drafts, newest first, at most RecentDraftsLimit of them
func (s *ContentStore) RecentDrafts() []models.Content {
	drafts := s.Drafts()
	if len(drafts) > RecentDraftsLimit {
		drafts = drafts[:RecentDraftsLimit]
	}
	return drafts
}

// Published returns published items ordered by publish time, newest first
func (s *ContentStore) Published() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var published []models.Content
	for _, c := range s.contents {
		if c.Status == models.ContentStatusPublished {
			published = append(published, c)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		var ti, tj time.Time
		if published[i].PublishedAt != nil {
			ti = *published[i].PublishedAt
		}
		if published[j].PublishedAt != nil {
			tj = *published[j].PublishedAt
		}
		return ti.After(tj)
	})
	return published
}

// Get returns the content with the given id, if present
func (s *ContentStore) Get(id string) (models.Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contents {
		if c.ID == id {
			return c, true
		}
	}
	return models.Content{}, false
}

// Save stamps the update time, upserts the item by id and persists the
// collection. The saved item becomes the current editor selection.
func (s *ContentStore) Save(ctx context.Context, content models.Content) models.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	content.UpdatedAt = time.Now().UTC()

	replaced := false
	for i, c := range s.contents {
		if c.ID == content.ID {
			s.contents[i] = content
			replaced = true
			break
		}
	}
	if !replaced {
		s.contents = append(s.contents, content)
	}

	s.persistLocked(ctx)

	selected := content
	s.current = &selected
	return content
}

// Delete removes the content with the given id and persists. If the deleted
// item was the current selection, the selection is cleared.
func (s *ContentStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.contents[:0]
	for _, c := range s.contents {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.contents = filtered

	s.persistLocked(ctx)

	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

// Publish transitions the item to published, stamping the publish time and
// recording the target platforms. Unknown ids are a silent no-op.
func (s *ContentStore) Publish(ctx context.Context, id string, platforms []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.contents {
		if c.ID != id {
			continue
		}
		now := time.Now().UTC()
		c.Status = models.ContentStatusPublished
		c.PublishedAt = &now
		c.PublishedPlatforms = platforms
		s.contents[i] = c
		s.persistLocked(ctx)
		return
	}
}

// SetCurrent records which document is open in the editor. The selection is
// in-memory only and resets across restart.
func (s *ContentStore) SetCurrent(content *models.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if content == nil {
		s.current = nil
		return
	}
	selected := *content
	s.current = &selected
}

// Current returns the document currently open in the editor, if any
func (s *ContentStore) Current() *models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	selected := *s.current
	return &selected
}

// Count returns the collection size
func (s *ContentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contents)
}

// persistLocked writes the full collection through to the durable store.
// Callers must hold the write lock.
func (s *ContentStore) persistLocked(ctx context.Context) {
	s.setJSON(ctx, KeyContents, s.contents)
}
