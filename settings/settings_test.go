package settings

import (
	"errors"
	"testing"

	cfg "github.com/automoto/pillbrawl/config"
	"github.com/automoto/pillbrawl/shared/attackdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data map[string][]byte
	err  error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = data
	return nil
}

func TestLoadWithoutSavedDataGivesDefaults(t *testing.T) {
	got, err := NewStore(&memItems{}).Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
	assert.Equal(t, attackdata.ModeEasy, got.Mode())
}

func TestSaveThenLoad(t *testing.T) {
	store := NewStore(&memItems{})
	s := Defaults()
	s.ToggleDifficulty()
	s.DrawHitboxes = false
	require.NoError(t, store.Save(s))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.DifficultyHard, got.Difficulty)
	assert.Equal(t, attackdata.ModeHard, got.Mode())
	assert.False(t, got.DrawHitboxes)
}

func TestLoadRepairsUnknownValues(t *testing.T) {
	items := &memItems{data: map[string][]byte{
		itemKey: []byte(`{"difficulty":"nightmare","schemes":[7,1]}`),
	}}
	got, err := NewStore(items).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings.DefaultDifficulty, got.Difficulty)
	assert.Equal(t, [2]cfg.ControlSchemeID{cfg.ControlSchemeA, cfg.ControlSchemeB}, got.Schemes)
}

func TestLoadReportsBrokenData(t *testing.T) {
	_, err := NewStore(&memItems{data: map[string][]byte{itemKey: []byte("{")}}).Load()
	assert.Error(t, err)

	boom := errors.New("disk gone")
	got, err := NewStore(&memItems{err: boom}).Load()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Defaults(), got)
}

func TestNilStoreIsUsable(t *testing.T) {
	var s *Store
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
	assert.NoError(t, s.Save(got))
}
