package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestNewMemoryStorageReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("expected default settings %+v, got %+v", DefaultSettings(), got)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("default settings should be valid: %v", err)
	}
}

func TestSetSettingsUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	want := Settings{
		ItemsPerBox:      12,
		Separator:        "-",
		MaxRowsPerColumn: 120,
		HeaderRows:       2,
	}
	if err := store.SetSettings(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetSettingsRejectsInvalid(t *testing.T) {
	t.Parallel()

	base := DefaultSettings()
	cases := map[string]func(*Settings){
		"zero items per box":  func(s *Settings) { s.ItemsPerBox = 0 },
		"empty separator":     func(s *Settings) { s.Separator = "" },
		"negative header":     func(s *Settings) { s.HeaderRows = -1 },
		"rows equal header":   func(s *Settings) { s.MaxRowsPerColumn = s.HeaderRows },
		"negative items":      func(s *Settings) { s.ItemsPerBox = -5 },
	}

	for name, mutate := range cases {
		name, mutate := name, mutate
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStorage()
			settings := base
			mutate(&settings)
			if err := store.SetSettings(settings); !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
			if got, _ := store.GetSettings(); got != base {
				t.Fatalf("expected settings to stay unchanged, got %+v", got)
			}
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			settings := DefaultSettings()
			settings.ItemsPerBox = n
			if err := store.SetSettings(settings); err != nil {
				panic(fmt.Sprintf("unexpected error: %v", err))
			}
		}(i)
		go func() {
			defer wg.Done()
			if _, err := store.GetSettings(); err != nil {
				panic(fmt.Sprintf("unexpected error: %v", err))
			}
		}()
	}

	wg.Wait()
}
