package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

func backends(t *testing.T) map[string]store {
	t.Helper()

	mr := miniredis.RunT(t)

	lite, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	stores := map[string]store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(mr.Addr(), "", 0, "test:"),
		"sqlite": lite,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_MissingKey(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Get(context.Background(), "volunteers_missing")

			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "hack4good_role", []byte("volunteer")))
			require.NoError(t, s.Set(ctx, "hack4good_role", []byte("admin")))

			v, err := s.Get(ctx, "hack4good_role")
			require.NoError(t, err)
			assert.Equal(t, "admin", string(v))
		})
	}
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "", 0, "h4g:")
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "volunteers_evt-1", []byte(`["Alex Chen"]`)))

	raw, err := mr.Get("h4g:volunteers_evt-1")
	require.NoError(t, err)
	assert.Equal(t, `["Alex Chen"]`, raw)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "", 0, "")
	defer s.Close()
	mr.Close()

	_, err := s.Get(context.Background(), "hack4good_role")

	assert.Error(t, err)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")

	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
