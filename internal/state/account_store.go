package state

import (
	"context"
	"encoding/json"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/rs/zerolog"
)

// KeyPlatformAccounts is the durable-store key for the account collection
const KeyPlatformAccounts = "appPlatformAccounts"

// AccountStore owns the platform account collection. Accounts are never
// hard-deleted; connect/disconnect only toggles their state. Platform names
// are not required to be unique.
type AccountStore struct {
	base
	accounts []models.PlatformAccount
}

// NewAccountStore creates an unhydrated account store
func NewAccountStore(kv kvstore.Store, log zerolog.Logger) *AccountStore {
	return &AccountStore{base: newBase(kv, log, "accounts")}
}

// Load hydrates the collection, falling back to the seed accounts when the
// key is absent or corrupt
func (s *AccountStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = models.SeedPlatformAccounts()

	raw, ok := s.get(ctx, KeyPlatformAccounts)
	if !ok {
		return
	}
	var accounts []models.PlatformAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		s.log.Error().Err(err).Str("key", KeyPlatformAccounts).Msg("Corrupt stored accounts, using seed data")
		return
	}
	s.accounts = accounts
}

// All returns every platform account
func (s *AccountStore) All() []models.PlatformAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PlatformAccount(nil), s.accounts...)
}

// Add creates an account from the supplied params, applying defaults for
// unset fields, persists the collection and returns the created account
func (s *AccountStore) Add(ctx context.Context, params models.PlatformAccountParams) models.PlatformAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := models.NewPlatformAccount(params)
	s.accounts = append(s.accounts, account)
	s.persistLocked(ctx)
	return account
}

// Connect marks the account as connected and resets its username to the
// connected placeholder. Unknown ids are a silent no-op.
func (s *AccountStore) Connect(ctx context.Context, id string) {
	s.setConnected(ctx, id, true, models.ConnectedUsername)
}

// Disconnect marks the account as disconnected and resets its username to
// the disconnected placeholder. Unknown ids are a silent no-op.
func (s *AccountStore) Disconnect(ctx context.Context, id string) {
	s.setConnected(ctx, id, false, models.DisconnectedUsername)
}

func (s *AccountStore) setConnected(ctx context.Context, id string, connected bool, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.ID != id {
			continue
		}
		a.IsConnected = connected
		a.Username = username
		s.accounts[i] = a
		s.persistLocked(ctx)
		return
	}
}

// Count returns the collection size
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

func (s *AccountStore) persistLocked(ctx context.Context) {
	s.setJSON(ctx, KeyPlatformAccounts, s.accounts)
}
