package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, found, err := store.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_SetGet(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()
	payload := []byte(`[{"doctorId":1,"dateTime":"2025-03-10T10:00"}]`)

	require.NoError(t, store.Set(ctx, StorageKey, payload))

	value, found, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, value)

	// Никакого временного файла после записи остаться не должно
	_, err = os.Stat(filepath.Join(dir, StorageKey+".json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_SetCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	store := NewFileStore(dir)

	require.NoError(t, store.Set(context.Background(), StorageKey, []byte(`[]`)))

	_, found, err := store.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	assert.True(t, found)
}
