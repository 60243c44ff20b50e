package storage

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidSettings indicates the provided settings violate validation rules.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the allocation and export defaults shared by API requests.
type Settings struct {
	ItemsPerBox       int
	Separator         string
	CombinedDetection bool
	SortCombinedSizes bool
	MaxRowsPerColumn  int
	HeaderRows        int
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ItemsPerBox:       20,
		Separator:         "/",
		CombinedDetection: true,
		SortCombinedSizes: true,
		MaxRowsPerColumn:  45,
		HeaderRows:        2,
	}
}

// Validate checks that the settings can drive an allocation and an export.
func (s Settings) Validate() error {
	switch {
	case s.ItemsPerBox <= 0:
		return fmt.Errorf("%w: items per box must be positive, got %d", ErrInvalidSettings, s.ItemsPerBox)
	case s.Separator == "":
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidSettings)
	case s.HeaderRows < 0:
		return fmt.Errorf("%w: header rows must not be negative, got %d", ErrInvalidSettings, s.HeaderRows)
	case s.MaxRowsPerColumn <= s.HeaderRows:
		return fmt.Errorf("%w: max rows per column (%d) must exceed header rows (%d)",
			ErrInvalidSettings, s.MaxRowsPerColumn, s.HeaderRows)
	}
	return nil
}

// Storage provides access to the current settings.
type Storage interface {
	GetSettings() (Settings, error)
	SetSettings(settings Settings) error
}

// MemoryStorage keeps settings in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStorage initialises storage with the default settings.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		settings: DefaultSettings(),
	}
}

// GetSettings returns the currently configured settings.
func (s *MemoryStorage) GetSettings() (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

// SetSettings validates and stores the provided settings.
func (s *MemoryStorage) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return nil
}
