package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestKeyIsSHA256Hex(t *testing.T) {
	if got := Key("abc"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("Unexpected key for \"abc\": %s", got)
	}
	if Key("a") == Key("b") {
		t.Error("Distinct inputs must hash to distinct keys")
	}
}

func TestGetOrComputeHit(t *testing.T) {
	c := New[int](10)

	computes := 0
	compute := func() (int, error) {
		computes++
		return 42, nil
	}

	v, hit, err := c.GetOrCompute("text", compute)
	if err != nil || v != 42 || hit {
		t.Fatalf("First call: expected miss with 42, got v=%d hit=%v err=%v", v, hit, err)
	}

	v, hit, err = c.GetOrCompute("text", compute)
	if err != nil || v != 42 || !hit {
		t.Fatalf("Second call: expected hit with 42, got v=%d hit=%v err=%v", v, hit, err)
	}
	if computes != 1 {
		t.Errorf("Expected exactly one compute, got %d", computes)
	}
}

func TestFIFOEviction(t *testing.T) {
	c := New[int](3)

	for i := 0; i < 3; i++ {
		text := fmt.Sprintf("text-%d", i)
		c.GetOrCompute(text, func() (int, error) { return i, nil })
	}

	// Re-reading the oldest entry must NOT refresh its position: this is
	// FIFO, not LRU.
	if _, hit, _ := c.GetOrCompute("text-0", func() (int, error) { return -1, nil }); !hit {
		t.Fatal("text-0 should still be cached")
	}

	// The 4th distinct insert evicts the oldest-inserted entry.
	c.GetOrCompute("text-3", func() (int, error) { return 3, nil })

	recomputed := false
	c.GetOrCompute("text-0", func() (int, error) {
		recomputed = true
		return 0, nil
	})
	if !recomputed {
		t.Error("text-0 should have been evicted first-in-first-out despite the recent read")
	}

	// Re-inserting text-0 evicted text-1 next; text-2 still survives.
	if _, hit, _ := c.GetOrCompute("text-2", func() (int, error) { return -1, nil }); !hit {
		t.Error("text-2 should survive the evictions")
	}
	if c.Len() != 3 {
		t.Errorf("Expected size bounded at 3, got %d", c.Len())
	}
}

func TestComputeErrorNotStored(t *testing.T) {
	c := New[int](10)
	wantErr := errors.New("boom")

	_, _, err := c.GetOrCompute("text", func() (int, error) { return 0, wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected compute error returned, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Failed computes must not be cached, size %d", c.Len())
	}

	// A later successful compute fills the slot.
	v, hit, err := c.GetOrCompute("text", func() (int, error) { return 7, nil })
	if err != nil || hit || v != 7 {
		t.Errorf("Expected fresh compute after error, got v=%d hit=%v err=%v", v, hit, err)
	}
}

func TestClear(t *testing.T) {
	c := New[int](10)
	c.GetOrCompute("a", func() (int, error) { return 1, nil })
	c.GetOrCompute("b", func() (int, error) { return 2, nil })

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", c.Len())
	}

	stats := c.Stats()
	if stats.Size != 0 || len(stats.SampleKeys) != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}

func TestStats(t *testing.T) {
	c := New[int](50)
	for i := 0; i < 15; i++ {
		text := fmt.Sprintf("text-%d", i)
		c.GetOrCompute(text, func() (int, error) { return i, nil })
	}

	stats := c.Stats()
	if stats.Size != 15 {
		t.Errorf("Expected size 15, got %d", stats.Size)
	}
	if stats.MaxSize != 50 {
		t.Errorf("Expected max size 50, got %d", stats.MaxSize)
	}
	if len(stats.SampleKeys) != 10 {
		t.Errorf("Expected sample of 10 keys, got %d", len(stats.SampleKeys))
	}
	if stats.SampleKeys[0] != Key("text-0") {
		t.Errorf("Sample should start at the oldest key")
	}
}

func TestDefaultMaxSize(t *testing.T) {
	c := New[int](0)
	if got := c.Stats().MaxSize; got != DefaultMaxSize {
		t.Errorf("Expected default max size %d, got %d", DefaultMaxSize, got)
	}
	c = New[int](-5)
	if got := c.Stats().MaxSize; got != DefaultMaxSize {
		t.Errorf("Expected default max size for negative input, got %d", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int](100)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				text := fmt.Sprintf("text-%d", i%30)
				v, _, err := c.GetOrCompute(text, func() (int, error) { return i % 30, nil })
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				_ = v
				if i%50 == 0 {
					c.Stats()
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != 30 {
		t.Errorf("Expected 30 distinct entries, got %d", c.Len())
	}
}
