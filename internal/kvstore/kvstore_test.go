package kvstore_test

import (
	"context"
	"testing"

	"github.com/content-studio-api/internal/kvstore"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get on missing key: ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "appContents", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get(ctx, "appContents")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("Value = %q", value)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := kvstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if _, ok, err := kv.Get(ctx, "appSettings.newsConfig"); err != nil || ok {
		t.Fatalf("Get on missing key: ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "appSettings.newsConfig", `{"apiKey":"abc"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// Overwrite wins
	if err := kv.Set(ctx, "appSettings.newsConfig", `{"apiKey":"def"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get(ctx, "appSettings.newsConfig")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != `{"apiKey":"def"}` {
		t.Errorf("Value = %q, want the last write", value)
	}
}

func TestFile_KeyWithPathSeparator(t *testing.T) {
	ctx := context.Background()
	kv, err := kvstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if err := kv.Set(ctx, "odd/key", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := kv.Get(ctx, "odd/key")
	if err != nil || !ok || value != "value" {
		t.Errorf("Get = %q ok=%v err=%v, want round trip", value, ok, err)
	}
}
