package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAccountStore_Load(t *testing.T) {
	path := writeSnapshot(t, `[
		{"accountNumber": "001", "pin": "1234", "balance": 100000},
		{"accountNumber": "002", "pin": "5678", "balance": 10000}
	]`)

	store := NewAccountStore(path, zerolog.Nop())
	assert.Equal(t, 2, store.Count())

	ctx := context.Background()
	a, err := store.FindByNumber(ctx, "001")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "001", a.Number)
	assert.Equal(t, "1234", a.PIN)
	assert.Equal(t, int64(100000), a.Balance)
}

func TestAccountStore_FindByNumber_Unknown(t *testing.T) {
	path := writeSnapshot(t, `[{"accountNumber": "001", "pin": "1234", "balance": 100}]`)
	store := NewAccountStore(path, zerolog.Nop())

	a, err := store.FindByNumber(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestAccountStore_MissingFile_DegradesToEmpty(t *testing.T) {
	store := NewAccountStore(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	assert.Equal(t, 0, store.Count())
}

func TestAccountStore_CorruptFile_DegradesToEmpty(t *testing.T) {
	path := writeSnapshot(t, `{"not": "an array"`)
	store := NewAccountStore(path, zerolog.Nop())
	assert.Equal(t, 0, store.Count())
}

func TestAccountStore_ReturnsLiveRecord(t *testing.T) {
	path := writeSnapshot(t, `[{"accountNumber": "001", "pin": "1234", "balance": 500}]`)
	store := NewAccountStore(path, zerolog.Nop())
	ctx := context.Background()

	a, err := store.FindByNumber(ctx, "001")
	require.NoError(t, err)
	a.Balance -= 200

	again, err := store.FindByNumber(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, int64(300), again.Balance)
}
