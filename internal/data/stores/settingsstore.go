package stores

import (
	"context"
	"fmt"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/kv"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
)

// SettingsKey is the kv key holding the settings singleton.
const SettingsKey = "settings"

// SettingsStore persists the settings singleton in the KV store.
type SettingsStore struct {
	kv       kv.KV
	defaults settings.Settings
}

var _ settings.Store = (*SettingsStore)(nil)

// NewSettingsStore creates a settings store over the given KV capability.
// defaults are returned whenever nothing usable is stored.
func NewSettingsStore(store kv.KV, defaults settings.Settings) *SettingsStore {
	defaults.Clamp()
	return &SettingsStore{kv: store, defaults: defaults}
}

// Load returns the persisted settings, clamped. A missing record returns
// the defaults with no error. An unreadable record is fail-open: the
// defaults are returned alongside the error so the caller can log it and
// keep running.
func (s *SettingsStore) Load(ctx context.Context) (settings.Settings, error) {
	cfg := s.defaults
	if err := s.kv.Get(ctx, SettingsKey, &cfg); err != nil {
		if IsNotFoundError(err) {
			return s.defaults, nil
		}
		return s.defaults, fmt.Errorf("load settings: %w", err)
	}

	cfg.Clamp()
	return cfg, nil
}

// Save clamps and persists the settings.
func (s *SettingsStore) Save(ctx context.Context, cfg settings.Settings) error {
	cfg.Clamp()
	if err := s.kv.Set(ctx, SettingsKey, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
