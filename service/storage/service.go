// Package storage keeps the workspaces, runs and settings slices in local
// storage: it restores them at startup and saves them whenever they change.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/internal/clock"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/service/dao"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
)

type Service struct {
	dao    dao.Service[string, Snapshot]
	store  *store.Store
	logger *slog.Logger
}

// Load restores persisted slices by dispatching the Local Storage actions in
// PersistedKeys order. Missing snapshots are skipped; malformed workspaces
// are dropped.
func (s *Service) Load(ctx context.Context) error {
	snapshots, err := s.dao.List(ctx, dao.NewParameter(dao.KeyParameter, state.PersistedKeys...))
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	byKey := make(map[string]*Snapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byKey[snapshot.Key] = snapshot
	}
	for _, key := range state.PersistedKeys {
		snapshot, ok := byKey[key]
		if !ok {
			continue
		}
		if err = s.restore(ctx, snapshot); err != nil {
			s.logger.Warn("failed to restore snapshot", "key", key, "error", err)
		}
	}
	return nil
}

// Reset deletes the persisted snapshots of keys, or of every persisted
// slice when none are given. The in-memory state is left untouched.
func (s *Service) Reset(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		keys = state.PersistedKeys
	}
	for _, key := range keys {
		if err := s.dao.Delete(ctx, key); err != nil && !errors.Is(err, dao.ErrNotFound) {
			return fmt.Errorf("failed to delete %v: %w", key, err)
		}
	}
	return nil
}

func (s *Service) restore(ctx context.Context, snapshot *Snapshot) error {
	switch snapshot.Key {
	case state.WorkspacesKey:
		persisted := &workspacesSnapshot{}
		if err := json.Unmarshal(snapshot.Data, persisted); err != nil {
			return err
		}
		props := actions.WorkspacesProps{Selected: persisted.Selected}
		for i, raw := range persisted.Workspaces {
			workspace, err := model.DecodeWorkspace(raw)
			if err != nil {
				s.logger.Warn("dropped invalid workspace", "index", i, "error", err)
				continue
			}
			props.Workspaces = append(props.Workspaces, workspace)
		}
		if len(props.Workspaces) == 0 {
			return nil
		}
		return s.store.Dispatch(ctx, actions.LocalStorage.LoadWorkspaces.Create(props))
	case state.RunsKey:
		props := actions.RunsProps{}
		if err := json.Unmarshal(snapshot.Data, &props); err != nil {
			return err
		}
		return s.store.Dispatch(ctx, actions.LocalStorage.LoadRuns.Create(props))
	case state.SettingsKey:
		settings := &model.Settings{}
		if err := json.Unmarshal(snapshot.Data, settings); err != nil {
			return err
		}
		return s.store.Dispatch(ctx, actions.LocalStorage.LoadSettings.Create(actions.SettingsProps{Settings: settings}))
	}
	return fmt.Errorf("unsupported snapshot key: %v", snapshot.Key)
}

// OnChange saves every persisted slice replaced by the dispatch
func (s *Service) OnChange(ctx context.Context, change *store.Change) {
	for _, key := range state.PersistedKeys {
		if !change.Changed(key) {
			continue
		}
		if err := s.Save(ctx, key, change.Next[key]); err != nil {
			s.logger.Error("failed to save slice", "key", key, "error", err)
		}
	}
}

// Save persists value under key. A snapshot whose encoding did not change,
// for instance after a UI-only edit, is not rewritten.
func (s *Service) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", key, err)
	}
	if existing, err := s.dao.Load(ctx, key); err == nil && bytes.Equal(existing.Data, data) {
		return nil
	}
	return s.dao.Save(ctx, &Snapshot{Key: key, Data: data, SavedAt: clock.Now()})
}

// Attach subscribes the service to its store and returns the unsubscribe function
func (s *Service) Attach() func() {
	return s.store.Subscribe(s.OnChange)
}

func New(snapshots dao.Service[string, Snapshot], aStore *store.Store, opts ...Option) *Service {
	ret := &Service{dao: snapshots, store: aStore, logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
