package fs

import (
	"context"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simdash/service/dao"
)

type entry struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

func TestService(t *testing.T) {
	ctx := context.Background()
	srv, err := New[entry](path.Join(t.TempDir(), "storage"), func(e *entry) string { return e.Key }, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Save(ctx, &entry{Key: "runs", Value: 2}))
	require.NoError(t, srv.Save(ctx, &entry{Key: "settings", Value: 3}))
	require.NoError(t, srv.Save(ctx, &entry{Key: "runs", Value: 4}))
	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)

	loaded, err := srv.Load(ctx, "runs")
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Value)

	_, err = srv.Load(ctx, "workspaces")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	_, err = srv.Load(ctx, "")
	assert.ErrorIs(t, err, dao.ErrInvalidID)

	all, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "runs", all[0].Key)

	filtered, err := srv.List(ctx, dao.NewParameter(dao.KeyParameter, "settings"))
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	require.NoError(t, srv.Delete(ctx, "runs"))
	assert.ErrorIs(t, srv.Delete(ctx, "runs"), dao.ErrNotFound)
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New[entry]("", func(e *entry) string { return e.Key }, nil)
	assert.Error(t, err)
}
