package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/textsoap/soap/internal/model"
)

func TestKey(t *testing.T) {
	k1 := Key("some text")
	k2 := Key("some text")
	k3 := Key("other text")

	if k1 != k2 {
		t.Error("identical text must produce identical keys")
	}
	if k1 == k3 {
		t.Error("different text must produce different keys")
	}
	if !strings.HasPrefix(k1, "soap:v1:") {
		t.Errorf("key missing version prefix: %s", k1)
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	report := &model.Report{Subject: "note.txt", Tone: "casual"}
	if err := c.Set("k1", report, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get("k1")
	if !found {
		t.Fatal("expected cache hit")
	}
	if got != report {
		t.Error("expected the stored report pointer back")
	}

	if _, found := c.Get("missing"); found {
		t.Error("expected cache miss for unknown key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, time.Minute)

	if err := c.Set("k1", &model.Report{Subject: "a"}, 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k1"); found {
		t.Error("expected entry to expire")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k1", &model.Report{Subject: "a"}, time.Minute)
	if err := c.Delete("k1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k1"); found {
		t.Error("expected entry to be deleted")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k1", &model.Report{Subject: "a"}, time.Minute)
	_ = c.Set("k2", &model.Report{Subject: "b"}, time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, found := c.Get("k1"); found {
		t.Error("expected k1 cleared")
	}
	if _, found := c.Get("k2"); found {
		t.Error("expected k2 cleared")
	}
}
