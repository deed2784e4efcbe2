package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGetProfile(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(&Profile{
		Height:    175.5,
		BodyShape: "athletic",
		SkinTone:  "medium",
		Gender:    "male",
		Age:       28,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 175.5, got.Height)
	assert.Equal(t, "athletic", got.BodyShape)
	assert.Equal(t, "medium", got.SkinTone)
	assert.Equal(t, "male", got.Gender)
	assert.Equal(t, 28, got.Age)
}

func TestGetMissingProfile(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(12345)
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create(&Profile{Height: 160, BodyShape: "pear", SkinTone: "light", Gender: "female", Age: 31})
	require.NoError(t, err)
	second, err := store.Create(&Profile{Height: 182, BodyShape: "rectangle", SkinTone: "dark", Gender: "male", Age: 45})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
