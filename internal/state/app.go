package state

import (
	"context"
	"sync"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/rs/zerolog"
)

// App is the single composition point over the stores. It is constructed
// once at startup and handed to whichever layer needs it; there is no
// ambient global.
type App struct {
	Contents   *ContentStore
	Accounts   *AccountStore
	AIConfigs  *AIConfigStore
	NewsConfig *NewsConfigStore
	Settings   *SettingsStore

	// Transient UI-only flag, process-lifetime, never persisted
	sidebarMu   sync.Mutex
	sidebarOpen bool
}

// NewApp wires every store onto the given durable adapter
func NewApp(kv kvstore.Store, log zerolog.Logger) *App {
	return &App{
		Contents:    NewContentStore(kv, log),
		Accounts:    NewAccountStore(kv, log),
		AIConfigs:   NewAIConfigStore(kv, log),
		NewsConfig:  NewNewsConfigStore(kv, log),
		Settings:    NewSettingsStore(kv, log),
		sidebarOpen: true,
	}
}

// Load hydrates every store from the durable adapter. Each store degrades
// independently, so hydration never fails as a whole.
func (a *App) Load(ctx context.Context) {
	a.Contents.Load(ctx)
	a.Accounts.Load(ctx)
	a.AIConfigs.Load(ctx)
	a.NewsConfig.Load(ctx)
}

// RecentDrafts is the always-fresh bounded drafts view, recomputed from the
// content collection on every read
func (a *App) RecentDrafts() []models.Content {
	return a.Contents.RecentDrafts()
}

// PublishedContents is the always-fresh published view
func (a *App) PublishedContents() []models.Content {
	return a.Contents.Published()
}

// ToggleSidebar flips the sidebar flag and returns the new value
func (a *App) ToggleSidebar() bool {
	a.sidebarMu.Lock()
	defer a.sidebarMu.Unlock()
	a.sidebarOpen = !a.sidebarOpen
	return a.sidebarOpen
}

// SidebarOpen reports the sidebar flag
func (a *App) SidebarOpen() bool {
	a.sidebarMu.Lock()
	defer a.sidebarMu.Unlock()
	return a.sidebarOpen
}
