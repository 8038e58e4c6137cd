package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreClaveAusente(t *testing.T) {
	kv, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var dest []string
	err = kv.Load("no_existe", &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreIdaYVuelta(t *testing.T) {
	kv, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, kv.Save("clave", in))

	var out map[string]int
	require.NoError(t, kv.Load("clave", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreJSONCorrupto(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rota.json"), []byte("{no es json"), 0644))

	var dest map[string]int
	err = kv.Load("rota", &dest)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreCreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
