package storage

import (
	"encoding/json"
	"time"
)

// Snapshot is the persisted JSON form of one state slice
type Snapshot struct {
	Key     string          `json:"key"`
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}

// SnapshotKey returns the DAO key of a snapshot
func SnapshotKey(s *Snapshot) string {
	return s.Key
}

type workspacesSnapshot struct {
	Workspaces []json.RawMessage `json:"workspaces"`
	Selected   string            `json:"selected"`
}
