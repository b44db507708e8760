package storage

import (
	"os"
	"strings"
	"testing"
)

func TestFSStoreRoundtrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key, err := store.Put("abc123.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if key != "abc123.txt" {
		t.Errorf("key = %q", key)
	}

	b, err := os.ReadFile(store.Path(key))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Errorf("content = %q", b)
	}

	if err := store.Remove(key); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(store.Path(key)); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %v", err)
	}
}

func TestFSStoreEmptyKey(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Put("", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
}
