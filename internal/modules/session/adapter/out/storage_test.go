package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sessionout "ledgerdesk/internal/modules/session/adapter/out"
	"ledgerdesk/internal/modules/session/domain"
	port "ledgerdesk/internal/modules/session/port/out"
)

func openDrivers(t *testing.T) map[string]port.Storage {
	t.Helper()
	dir := t.TempDir()
	sqlite, err := sessionout.NewSQLiteStorage(filepath.Join(dir, "state", "ledgerdesk.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	bolt, err := sessionout.NewBoltStorage(filepath.Join(dir, "state", "session.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	drivers := map[string]port.Storage{
		"file":   sessionout.NewFileStorage(filepath.Join(dir, "state", "session.json")),
		"sqlite": sqlite,
		"bolt":   bolt,
	}
	t.Cleanup(func() {
		for _, storage := range drivers {
			_ = storage.Close()
		}
	})
	return drivers
}

func TestStorageDriversRoundTripAndClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, storage := range openDrivers(t) {
		if _, ok, err := storage.Get(ctx, domain.KeyUser); err != nil || ok {
			t.Fatalf("%s: expected empty storage, got ok=%v err=%v", name, ok, err)
		}
		values := map[string]string{
			domain.KeyUser:         `{"id":1,"email":"a@b.com","role":"admin"}`,
			domain.KeyAccessToken:  "tok-a",
			domain.KeyRefreshToken: "tok-r",
		}
		if err := storage.SetMany(ctx, values); err != nil {
			t.Fatalf("%s: set many: %v", name, err)
		}
		for key, want := range values {
			got, ok, err := storage.Get(ctx, key)
			if err != nil || !ok || got != want {
				t.Fatalf("%s: get %s = %q ok=%v err=%v", name, key, got, ok, err)
			}
		}
		if err := storage.SetMany(ctx, map[string]string{domain.KeyAccessToken: "tok-b"}); err != nil {
			t.Fatalf("%s: overwrite: %v", name, err)
		}
		if got, _, _ := storage.Get(ctx, domain.KeyAccessToken); got != "tok-b" {
			t.Fatalf("%s: expected overwritten token, got %q", name, got)
		}
		if err := storage.Remove(ctx, domain.StorageKeys()...); err != nil {
			t.Fatalf("%s: remove: %v", name, err)
		}
		for _, key := range domain.StorageKeys() {
			if _, ok, err := storage.Get(ctx, key); err != nil || ok {
				t.Fatalf("%s: key %s survived remove (err=%v)", name, key, err)
			}
		}
		if err := storage.Remove(ctx, domain.KeyUser); err != nil {
			t.Fatalf("%s: removing a missing key must succeed: %v", name, err)
		}
	}
}

func TestSQLiteStoragePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledgerdesk.db")
	first, err := sessionout.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := first.SetMany(ctx, map[string]string{domain.KeyAccessToken: "tok-a"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := sessionout.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer second.Close()
	if got, ok, err := second.Get(ctx, domain.KeyAccessToken); err != nil || !ok || got != "tok-a" {
		t.Fatalf("expected persisted token, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestFileStorageRejectsCorruptDocument(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	storage := sessionout.NewFileStorage(path)
	if _, _, err := storage.Get(context.Background(), domain.KeyUser); err == nil {
		t.Fatalf("expected decode error")
	}
}
