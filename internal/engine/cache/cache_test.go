package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/bisko"
	"github.com/rshade/bisko/internal/engine"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "cache"), true, MinTTLSeconds)
	require.NoError(t, err)
	return store
}

func TestEntry(t *testing.T) {
	entry := NewEntry("k", "03159016", json.RawMessage(`{"a":1}`), 60)

	assert.False(t, entry.IsExpired())
	assert.Greater(t, entry.TimeUntilExpiration(), time.Duration(0))
	assert.LessOrEqual(t, entry.Age(), time.Second)

	entry.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, entry.IsExpired())
	assert.Zero(t, entry.TimeUntilExpiration())
}

func TestKey(t *testing.T) {
	dir := t.TempDir()
	facts := filepath.Join(dir, "facts.csv")
	require.NoError(t, os.WriteFile(facts, []byte("label,value\nA,1\n"), 0o600))

	k1, err := Key([]byte("doc"), facts, "")
	require.NoError(t, err)
	assert.Len(t, k1, 64)

	k2, err := Key([]byte("doc"), facts)
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "empty paths are skipped")

	k3, err := Key([]byte("doc2"), facts)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	require.NoError(t, os.WriteFile(facts, []byte("label,value\nA,2\n"), 0o600))
	k4, err := Key([]byte("doc"), facts)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4, "table contents enter the key")

	a, err := Key([]byte("ab"))
	require.NoError(t, err)
	b, err := Key([]byte("a"), writeTemp(t, "b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "chunk boundaries matter")

	_, err = Key([]byte("doc"), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileStore_SetGetDelete(t *testing.T) {
	store := newStore(t)
	assert.True(t, store.IsEnabled())
	assert.Equal(t, MinTTLSeconds, store.TTL())

	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrCacheNotFound)

	require.NoError(t, store.Set("a/b:c", "region", json.RawMessage(`{"x":1}`)))
	entry, err := store.Get("a/b:c")
	require.NoError(t, err)
	assert.Equal(t, "region", entry.Region)
	assert.JSONEq(t, `{"x":1}`, string(entry.Data))

	_, err = os.Stat(filepath.Join(store.Directory(), "a_b_c.json"))
	require.NoError(t, err)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.Delete("a/b:c"))
	require.NoError(t, store.Delete("a/b:c"))
	_, err = store.Get("a/b:c")
	assert.ErrorIs(t, err, ErrCacheNotFound)

	assert.ErrorIs(t, store.Set("", "", nil), ErrInvalidCacheKey)
}

func TestFileStore_Expiry(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("fresh", "", json.RawMessage(`1`)))

	expired := NewEntry("old", "", json.RawMessage(`2`), MinTTLSeconds)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	data, err := json.Marshal(expired)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(store.Directory(), "old.json"), data, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(store.Directory(), "junk.json"), []byte("{"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(store.Directory(), "README"), []byte("keep"), 0o600))

	require.NoError(t, store.CleanupExpired())
	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, os.WriteFile(filepath.Join(store.Directory(), "old.json"), data, 0o600))
	_, err = store.Get("old")
	require.ErrorIs(t, err, ErrCacheExpired)
	_, err = os.Stat(filepath.Join(store.Directory(), "old.json"))
	assert.True(t, os.IsNotExist(err), "expired entries are removed on read")

	require.NoError(t, store.Clear())
	count, err = store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
	_, err = os.Stat(filepath.Join(store.Directory(), "README"))
	assert.NoError(t, err)
}

func TestFileStore_Result(t *testing.T) {
	store := newStore(t)
	res := &engine.Result{
		RunID:       "01JABCDEFGHJKMNPQRSTVWXYZ0",
		Region:      "03159016",
		Year:        2018,
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Bisko: &bisko.Bisko{
			Total:   bisko.EnergySource{Energy: 3500, CO2eCb: 900, CO2ePb: 950},
			Quality: 0.0714,
		},
	}

	require.NoError(t, store.PutResult("k", res))
	got, err := store.GetResult("k")
	require.NoError(t, err)
	assert.Equal(t, res.Region, got.Region)
	assert.Equal(t, res.RunID, got.RunID)
	assert.True(t, res.GeneratedAt.Equal(got.GeneratedAt))
	assert.Equal(t, res.Bisko.Total, got.Bisko.Total)
	assert.InDelta(t, 0.0714, got.Bisko.Quality, 1e-12)
}

func TestFileStore_Disabled(t *testing.T) {
	store, err := NewFileStore("", false, 0)
	require.NoError(t, err)
	assert.False(t, store.IsEnabled())

	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrCacheDisabled)
	assert.ErrorIs(t, store.Set("k", "", nil), ErrCacheDisabled)
	assert.ErrorIs(t, store.Clear(), ErrCacheDisabled)
	_, err = store.Count()
	assert.ErrorIs(t, err, ErrCacheDisabled)

	_, err = NewFileStore("", true, DefaultTTLSeconds)
	assert.Error(t, err)
	_, err = NewFileStore(t.TempDir(), true, 1)
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3600", 3600, false},
		{"1h30m", 5400, false},
		{"24h", 86400, false},
		{"10", 0, true},
		{"1000h", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTTL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "30m", FormatDuration(30*time.Minute))
	assert.Equal(t, "5h", FormatDuration(5*time.Hour))
	assert.Equal(t, "5h30m", FormatDuration(5*time.Hour+30*time.Minute))
	assert.Equal(t, "2d", FormatDuration(48*time.Hour))
	assert.Equal(t, "2d4h", FormatDuration(52*time.Hour))
}
