package logic_test

import (
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/estatebook/internal/book"
	"github.com/mesh-intelligence/estatebook/internal/command"
	"github.com/mesh-intelligence/estatebook/internal/logic"
	"github.com/mesh-intelligence/estatebook/internal/model"
	"github.com/mesh-intelligence/estatebook/internal/storage"
	"github.com/mesh-intelligence/estatebook/internal/testutil"
)

var errDiskFull = errors.New("disk full")

// recordingStorage counts saves and can be made to fail.
type recordingStorage struct {
	personSaves   int
	propertySaves int
	fail          bool
}

func (s *recordingStorage) ReadPersonBook() (*book.PersonBook, bool, error) {
	return nil, false, nil
}

func (s *recordingStorage) ReadPropertyBook() (*book.PropertyBook, bool, error) {
	return nil, false, nil
}

func (s *recordingStorage) SavePersonBook(*book.PersonBook) error {
	if s.fail {
		return errDiskFull
	}
	s.personSaves++
	return nil
}

func (s *recordingStorage) SavePropertyBook(*book.PropertyBook) error {
	if s.fail {
		return errDiskFull
	}
	s.propertySaves++
	return nil
}

func newLogic(s storage.BookStorage) (*logic.Manager, *model.Manager) {
	m := model.NewManager(testutil.TypicalPersonBook(), testutil.TypicalPropertyBook(), model.DefaultUserPrefs("data"))
	return logic.NewManager(m, s, slog.New(slog.DiscardHandler)), m
}

func TestExecuteSavesToJSON(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewJSONBookStorage(filepath.Join(dir, "personbook.json"), filepath.Join(dir, "propertybook.json"))
	l, m := newLogic(s)

	res, err := l.Execute("addprop n/Dover Parkview p/760000 a/10 Dover Rise d/Corner unit s/Lim Wei sp/93334444")

	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "New property added: Dover Parkview")
	saved, ok, err := s.ReadPropertyBook()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, m.PropertyBook().Equal(saved))
	assert.True(t, saved.HasProperty(testutil.Dover))
}

func TestExecuteSavesOnlyChangedBooks(t *testing.T) {
	s := &recordingStorage{}
	l, _ := newLogic(s)

	_, err := l.Execute("listbuyer")
	require.NoError(t, err)
	assert.Equal(t, 1, s.personSaves, "first command writes both books")
	assert.Equal(t, 1, s.propertySaves)

	_, err = l.Execute("findprop peak")
	require.NoError(t, err)
	assert.Equal(t, 1, s.personSaves)
	assert.Equal(t, 1, s.propertySaves)

	_, err = l.Execute("deleteprop 1")
	require.NoError(t, err)
	assert.Equal(t, 1, s.personSaves)
	assert.Equal(t, 2, s.propertySaves)
}

func TestExecuteParseAndCommandErrors(t *testing.T) {
	s := &recordingStorage{}
	l, _ := newLogic(s)

	_, err := l.Execute("frobnicate")
	var pe *command.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, command.MessageUnknownCommand, pe.Message)

	_, err = l.Execute("deletebuyer 99")
	var ce *command.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, command.MessageInvalidPersonIndex, ce.Message)

	assert.Zero(t, s.personSaves, "failed commands do not save")
}

func TestExecuteSaveFailureKeepsChange(t *testing.T) {
	s := &recordingStorage{fail: true}
	l, m := newLogic(s)

	res, err := l.Execute("deletebuyer 1")

	assert.ErrorIs(t, err, logic.ErrSave)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), logic.MessageSaveFailed)
	assert.Contains(t, res.Feedback, "Deleted buyer")
	assert.False(t, m.HasPerson(testutil.Alice))

	// The next successful save still writes the change.
	s.fail = false
	_, err = l.Execute("listbuyer")
	require.NoError(t, err)
	assert.Equal(t, 1, s.personSaves)
}
