package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/simdash/service/dao"
	"github.com/viant/simdash/service/dao/criteria"
)

// Service implements a filesystem-based dao.Service storing one JSON
// document per key under basePath
type Service[T any] struct {
	basePath    string
	fs          afs.Service
	keySelector func(*T) string
	logger      *slog.Logger
	mu          sync.RWMutex
}

// Save persists an entity to <basePath>/<key>.json
func (s *Service[T]) Save(ctx context.Context, entity *T) error {
	if entity == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(entity)
	if key == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %v: %w", key, err)
	}
	filePath := s.entityPath(key)
	if err = s.fs.Upload(ctx, filePath, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save %v to file %s: %w", key, filePath, err)
	}
	return nil
}

// Load retrieves an entity from the filesystem
func (s *Service[T]) Load(ctx context.Context, key string) (*T, error) {
	if key == "" {
		return nil, dao.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filePath := s.entityPath(key)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %v exists: %w", key, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", dao.ErrNotFound, key)
	}
	data, err := s.fs.DownloadWithURL(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", filePath, err)
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %v: %w", filePath, err)
	}
	return &entity, nil
}

// Delete removes an entity from the filesystem
func (s *Service[T]) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.entityPath(key)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return fmt.Errorf("failed to check if %v exists: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", dao.ErrNotFound, key)
	}
	if err := s.fs.Delete(ctx, filePath); err != nil {
		return fmt.Errorf("failed to delete %v: %w", filePath, err)
	}
	return nil
}

// List returns stored entities ordered by key; unreadable files are logged and skipped
func (s *Service[T]) List(ctx context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.basePath, option.NewRecursive(false))
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", s.basePath, err)
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name() < objects[j].Name() })

	var result []*T
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		if !criteria.FilterByKey(strings.TrimSuffix(object.Name(), ".json"), parameters) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.logger.Warn("failed to read entity", "url", object.URL(), "error", err)
			continue
		}
		var entity T
		if err := json.Unmarshal(data, &entity); err != nil {
			s.logger.Warn("failed to unmarshal entity", "url", object.URL(), "error", err)
			continue
		}
		result = append(result, &entity)
	}
	return result, nil
}

func (s *Service[T]) entityPath(key string) string {
	return url.Join(s.basePath, key+".json")
}

// New creates a filesystem service rooted at basePath
func New[T any](basePath string, keySelector func(*T) string, logger *slog.Logger) (*Service[T], error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	fs := afs.New()
	ctx := context.Background()
	exists, _ := fs.Exists(ctx, basePath)
	if !exists {
		if err := fs.Create(ctx, basePath, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base directory: %w", err)
		}
	}
	basePath = url.Normalize(basePath, file.Scheme)
	return &Service[T]{
		basePath:    basePath,
		fs:          fs,
		keySelector: keySelector,
		logger:      logger,
	}, nil
}

var _ dao.Service[string, struct{}] = (*Service[struct{}])(nil)
