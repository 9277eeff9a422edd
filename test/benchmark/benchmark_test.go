package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/content-studio-api/internal/validation"
	"github.com/rs/zerolog"
)

func seededContentStore(b *testing.B, n int) *state.ContentStore {
	b.Helper()
	store := state.NewContentStore(kvstore.NewMemory(), zerolog.Nop())
	store.Load(context.Background())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.Save(context.Background(), models.Content{
			ID:        fmt.Sprintf("bench-%06d", i),
			Title:     fmt.Sprintf("Benchmark Post %d", i),
			Body:      "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
			Status:    models.ContentStatusDraft,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return store
}

// BenchmarkContentSave measures a full save: in-memory upsert plus the
// write-through serialization of the whole collection
func BenchmarkContentSave(b *testing.B) {
	store := seededContentStore(b, 100)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		store.Save(context.Background(), models.Content{
			ID:     "bench-000050",
			Title:  "Updated Post",
			Body:   "Updated body",
			Status: models.ContentStatusDraft,
		})
	}
}

// BenchmarkRecentDrafts measures recomputing the bounded drafts view, which
// sorts a copy of the collection on every read
func BenchmarkRecentDrafts(b *testing.B) {
	store := seededContentStore(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		drafts := store.RecentDrafts()
		if len(drafts) != state.RecentDraftsLimit {
			b.Fatalf("Expected %d drafts, got %d", state.RecentDraftsLimit, len(drafts))
		}
	}
}

// BenchmarkContentHydration measures loading a persisted collection into a
// fresh store
func BenchmarkContentHydration(b *testing.B) {
	kv := kvstore.NewMemory()
	seeded := state.NewContentStore(kv, zerolog.Nop())
	seeded.Load(context.Background())
	for i := 0; i < 1000; i++ {
		seeded.Save(context.Background(), models.Content{
			ID:     fmt.Sprintf("bench-%06d", i),
			Title:  fmt.Sprintf("Benchmark Post %d", i),
			Status: models.ContentStatusDraft,
		})
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		store := state.NewContentStore(kv, zerolog.Nop())
		store.Load(context.Background())
	}
}

// BenchmarkMemoryKVSet benchmarks the raw adapter write path
func BenchmarkMemoryKVSet(b *testing.B) {
	kv := kvstore.NewMemory()
	value := `{"id":"1","title":"First Post","status":"draft"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		kv.Set(context.Background(), "benchKey", value)
	}
}

// BenchmarkValidation benchmarks the content validation pipeline
func BenchmarkValidation(b *testing.B) {
	content := &models.Content{
		ID:     "c1",
		Title:  "My Post",
		Status: models.ContentStatusDraft,
		Sections: []models.ContentSection{
			{ID: "s1", Title: "Intro", Content: "Hello"},
			{ID: "s2", Title: "Body", Content: "World"},
		},
		Images: []models.ContentImage{
			{ID: "i1", Alt: "cover", URL: "https://example.com/cover.png"},
		},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.Content(content)
	}
}
