package state_test

import (
	"context"
	"testing"

	"github.com/content-studio-api/internal/kvstore"
	"github.com/content-studio-api/internal/models"
	"github.com/content-studio-api/internal/state"
	"github.com/rs/zerolog"
)

func newAccountStore(t *testing.T, kv kvstore.Store) *state.AccountStore {
	t.Helper()
	store := state.NewAccountStore(kv, zerolog.Nop())
	store.Load(context.Background())
	return store
}

func TestAccountStore_LoadSeedsWhenEmpty(t *testing.T) {
	store := newAccountStore(t, kvstore.NewMemory())

	accounts := store.All()
	if len(accounts) != 4 {
		t.Fatalf("Expected 4 seed accounts, got %d", len(accounts))
	}
	if accounts[0].PlatformName != "Medium" {
		t.Errorf("First seed account = %s, want Medium", accounts[0].PlatformName)
	}
}

func TestAccountStore_AddAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(t, kvstore.NewMemory())

	account := store.Add(ctx, models.PlatformAccountParams{PlatformName: "My Blog"})

	if account.ID == "" {
		t.Error("Add should stamp an id")
	}
	if account.Username != models.DefaultUsername {
		t.Errorf("Username = %q, want default %q", account.Username, models.DefaultUsername)
	}
	if account.IsConnected {
		t.Error("New accounts must start disconnected")
	}
	if account.AvatarURL != models.DefaultAvatarURL {
		t.Errorf("AvatarURL = %q, want the default avatar", account.AvatarURL)
	}
	if account.AppID != "" || account.AppSecret != "" {
		t.Error("Generic accounts carry no app credentials")
	}
}

func TestAccountStore_AddPreservesAppCredentials(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(t, kvstore.NewMemory())

	account := store.Add(ctx, models.PlatformAccountParams{
		PlatformName: "My WeChat OA",
		Username:     "wechat_user_123",
		AppID:        "wx12345appid",
		AppSecret:    "secret12345appsecret",
	})

	if account.Username != "wechat_user_123" {
		t.Errorf("Supplied username should win over the default, got %q", account.Username)
	}
	if account.AppID != "wx12345appid" || account.AppSecret != "secret12345appsecret" {
		t.Error("App credentials must be preserved on add")
	}
	if account.IsConnected {
		t.Error("New accounts must start disconnected")
	}
}

func TestAccountStore_AddGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(t, kvstore.NewMemory())

	seen := make(map[string]bool)
	for _, a := range store.All() {
		seen[a.ID] = true
	}
	for i := 0; i < 20; i++ {
		account := store.Add(ctx, models.PlatformAccountParams{PlatformName: "Blog"})
		if seen[account.ID] {
			t.Fatalf("Duplicate id generated: %s", account.ID)
		}
		seen[account.ID] = true
	}
}

func TestAccountStore_ConnectAndDisconnect(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(t, kvstore.NewMemory())

	account := store.Add(ctx, models.PlatformAccountParams{PlatformName: "Blog", Username: "someone"})

	store.Connect(ctx, account.ID)
	connected := findAccount(t, store, account.ID)
	if !connected.IsConnected {
		t.Error("Connect should mark the account connected")
	}
	if connected.Username != models.ConnectedUsername {
		t.Errorf("Username = %q, want connected placeholder %q", connected.Username, models.ConnectedUsername)
	}

	store.Disconnect(ctx, account.ID)
	disconnected := findAccount(t, store, account.ID)
	if disconnected.IsConnected {
		t.Error("Disconnect should mark the account disconnected")
	}
	if disconnected.Username != models.DisconnectedUsername {
		t.Errorf("Username = %q, want disconnected placeholder %q", disconnected.Username, models.DisconnectedUsername)
	}
}

func TestAccountStore_ConnectUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(t, kvstore.NewMemory())

	before := store.All()
	store.Connect(ctx, "no-such-id")
	store.Disconnect(ctx, "no-such-id")
	after := store.All()

	if len(before) != len(after) {
		t.Fatal("Unknown id must not change the collection")
	}
	for i := range before {
		if before[i].IsConnected != after[i].IsConnected || before[i].Username != after[i].Username {
			t.Error("Unknown id must not touch any account")
		}
	}
}

func TestAccountStore_RoundTripThroughDurableStore(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	store := newAccountStore(t, kv)
	added := store.Add(ctx, models.PlatformAccountParams{
		PlatformName: "My WeChat OA",
		AppID:        "wxid",
		AppSecret:    "wxsecret",
	})
	store.Connect(ctx, added.ID)

	reloaded := newAccountStore(t, kv)

	got := findAccount(t, reloaded, added.ID)
	if !got.IsConnected {
		t.Error("Connection state should survive reload")
	}
	if got.AppID != "wxid" || got.AppSecret != "wxsecret" {
		t.Error("App credentials should survive reload")
	}
}

func findAccount(t *testing.T, store *state.AccountStore, id string) models.PlatformAccount {
	t.Helper()
	for _, a := range store.All() {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("Account %s not found", id)
	return models.PlatformAccount{}
}
