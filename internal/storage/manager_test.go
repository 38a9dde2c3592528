package storage_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/storage"
	"github.com/mesh-intelligence/estatebook/internal/testutil"
)

func TestManagerDelegates(t *testing.T) {
	dir := t.TempDir()
	prefs := model.DefaultUserPrefs(dir)
	m := storage.NewManager(
		storage.NewJSONBookStorage(prefs.PersonBookFile, prefs.PropertyBookFile),
		storage.NewJSONPrefsStorage(filepath.Join(dir, "preferences.json"), prefs),
		slog.New(slog.DiscardHandler),
	)

	require.NoError(t, m.SavePersonBook(testutil.TypicalPersonBook()))
	require.NoError(t, m.SavePropertyBook(testutil.TypicalPropertyBook()))
	require.NoError(t, m.SaveUserPrefs(prefs))

	persons, ok, err := m.ReadPersonBook()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, testutil.TypicalPersonBook().Equal(persons))

	properties, ok, err := m.ReadPropertyBook()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, testutil.TypicalPropertyBook().Equal(properties))

	gotPrefs, ok, err := m.ReadUserPrefs()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, prefs, gotPrefs)
	assert.FileExists(t, filepath.Join(dir, "personbook.json"))
}
