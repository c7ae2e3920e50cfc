package livetiming

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer c.Close()

	url := "https://example.test/v1/laps?year=2023&round=14&session=Q"
	body := []byte(`[{"driver":"VER"}]`)

	if _, ok := c.Get(url); ok {
		t.Fatal("got a hit on an empty cache")
	}

	if err := c.Put(url, body); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, ok := c.Get(url)
	if !ok {
		t.Fatal("no hit after Put")
	}
	if !bytes.Equal(got, body) {
		t.Errorf("got %q, want %q", got, body)
	}

	// a second Put replaces the stored body
	if err := c.Put(url, []byte("[]")); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, _ = c.Get(url)
	if string(got) != "[]" {
		t.Errorf("got %q after replace, want []", got)
	}
}
