package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentStatus represents the lifecycle state of a content item
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	// ContentStatusFailed is part of the model for a publish pipeline that can
	// fail; no current operation transitions into it.
	ContentStatusFailed ContentStatus = "failed"
)

// ValidContentStatuses defines allowed content statuses
var ValidContentStatuses = map[ContentStatus]bool{
	ContentStatusDraft:     true,
	ContentStatusPublished: true,
	ContentStatusFailed:    true,
}

// Content is a document being authored. Field names on the wire match the
// stored JSON layout; the markdown body serializes as "content".
type Content struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Body               string           `json:"content"`
	Status             ContentStatus    `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	PublishedAt        *time.Time       `json:"publishedAt,omitempty"`
	PublishedPlatforms []string         `json:"publishedPlatforms,omitempty"`
	Sections           []ContentSection `json:"sections,omitempty"`
	Images             []ContentImage   `json:"images,omitempty"`
}

// ContentSection is one titled block within a content item
type ContentSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContentImage is an image attached to a content item, optionally anchored to
// a section
type ContentImage struct {
	ID        string `json:"id"`
	Alt       string `json:"alt"`
	URL       string `json:"url"`
	SectionID string `json:"sectionId,omitempty"`
}

// NewContent creates an empty draft with a fresh id and current timestamps
func NewContent() *Content {
	now := time.Now().UTC()
	return &Content{
		ID:        uuid.NewString(),
		Title:     "Untitled Content",
		Body:      "",
		Status:    ContentStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
		Sections:  []ContentSection{},
		Images:    []ContentImage{},
	}
}
