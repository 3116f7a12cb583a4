package store

import (
	"fmt"
	"sync"
	"testing"

	"bridge-deals-service/internal/domain"
)

func TestDealStorePutGet(t *testing.T) {
	s := NewDealStore()

	deal := &domain.Deal{TricksMade: 9}
	s.Put("a/b/1.lin", deal)

	got, ok := s.Get("a/b/1.lin")
	if !ok || got != deal {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected miss for unknown path")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestDealStoreConcurrentWriters(t *testing.T) {
	s := NewDealStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put(fmt.Sprintf("record-%d.lin", i), &domain.Deal{})
		}(i)
	}
	wg.Wait()

	if s.Len() != 32 {
		t.Fatalf("Len = %d, want 32", s.Len())
	}
	if len(s.Paths()) != 32 {
		t.Fatalf("Paths = %d entries, want 32", len(s.Paths()))
	}
}
