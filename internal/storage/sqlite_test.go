package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.GetItem("nope")
	if err != nil {
		t.Fatalf("GetItem() failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("GetItem(missing) = %q, %v; expected empty, false", value, ok)
	}
}

func TestStoreSetReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetItem("board", `[1]`); err != nil {
		t.Fatalf("SetItem() failed: %v", err)
	}
	if err := store.SetItem("board", `[1,2]`); err != nil {
		t.Fatalf("SetItem() failed: %v", err)
	}

	value, ok, err := store.GetItem("board")
	if err != nil || !ok {
		t.Fatalf("GetItem() = %q, %v, %v", value, ok, err)
	}
	if value != `[1,2]` {
		t.Errorf("value = %q, expected the second write", value)
	}

	items, err := store.Items()
	if err != nil {
		t.Fatalf("Items() failed: %v", err)
	}
	if len(items) != 1 || items[0].Key != "board" || items[0].Size != 5 {
		t.Errorf("Items() = %+v, expected one 5-byte board item", items)
	}
}

func TestStoreRemoveItem(t *testing.T) {
	store := openTestStore(t)

	store.SetItem("a", "1")
	store.SetItem("b", "2")

	if err := store.RemoveItem("a"); err != nil {
		t.Fatalf("RemoveItem() failed: %v", err)
	}
	if err := store.RemoveItem("a"); err != nil {
		t.Errorf("removing a missing key should not fail: %v", err)
	}

	if _, ok, _ := store.GetItem("a"); ok {
		t.Error("a should be gone")
	}
	if v, ok, _ := store.GetItem("b"); !ok || v != "2" {
		t.Error("b should be untouched")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SetItem("k", "v")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, ok, _ := store.GetItem("k"); !ok || v != "v" {
		t.Errorf("GetItem after reopen = %q, %v", v, ok)
	}
}
