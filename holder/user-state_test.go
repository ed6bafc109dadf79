package holder

import (
	"LogoBot/storage"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenStyles struct{}

func (brokenStyles) GetUserStyle(int64) (string, error) { return "", errors.New("down") }
func (brokenStyles) SetUserStyle(int64, string) error   { return errors.New("down") }
func (brokenStyles) Close() error                       { return nil }

type brokenJournal struct{}

func (brokenJournal) AddGeneration(storage.Generation) error { return errors.New("down") }
func (brokenJournal) GetRecentGenerations(int64, int) ([]storage.Generation, error) {
	return nil, errors.New("down")
}
func (brokenJournal) Close() error { return errors.New("close failed") }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserState(t *testing.T) {
	state := NewUserState(storage.NewMemoryStyleStorage(), storage.NewMemoryJournalStorage(), testLogger())

	assert.Empty(t, state.Style(1))
	state.SetStyle(1, "modern")
	assert.Equal(t, "modern", state.Style(1))
	assert.Empty(t, state.Style(2))

	state.Record(storage.Generation{UserId: 1, Prompt: "a fox", Success: true})
	history := state.History(1, 5)
	assert.Len(t, history, 1)
	assert.Equal(t, "a fox", history[0].Prompt)

	assert.NoError(t, state.Close())
}

func TestUserState_StorageFailures(t *testing.T) {
	state := NewUserState(brokenStyles{}, brokenJournal{}, testLogger())

	state.SetStyle(1, "modern")
	assert.Empty(t, state.Style(1))
	state.Record(storage.Generation{UserId: 1})
	assert.Nil(t, state.History(1, 5))
	assert.EqualError(t, state.Close(), "close failed")
}
