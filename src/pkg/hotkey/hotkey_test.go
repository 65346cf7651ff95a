package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

func TestSettings_SetKeyCombination(t *testing.T) {
	store := defaults.NewMemoryStore()
	s := NewSettings(store)

	kc, err := s.KeyCombination(ActionToggleHiddenSection)
	require.NoError(t, err)
	assert.Nil(t, kc)

	want := KeyCombination{Key: 7, Modifiers: ModifierControl | ModifierOption}
	require.NoError(t, s.SetKeyCombination(ActionToggleHiddenSection, want))
	require.NoError(t, s.SetKeyCombination(ActionToggleAlwaysHiddenSection, KeyCombination{Key: 1}))

	// 新实例从存储中读取
	kc, err = NewSettings(store).KeyCombination(ActionToggleHiddenSection)
	require.NoError(t, err)
	require.NotNil(t, kc)
	assert.Equal(t, want, *kc)

	actions, err := s.Actions()
	require.NoError(t, err)
	assert.Equal(t, []Action{ActionToggleAlwaysHiddenSection, ActionToggleHiddenSection}, actions)
}

func TestSettings_CorruptData(t *testing.T) {
	store := defaults.NewMemoryStore()
	require.NoError(t, store.SetData(defaults.KeyHotkeys, []byte("not json")))

	s := NewSettings(store)
	_, err := s.KeyCombination(ActionToggleHiddenSection)
	assert.Error(t, err)
	assert.Error(t, s.SetKeyCombination(ActionToggleHiddenSection, KeyCombination{}))
}

func TestModifiers_String(t *testing.T) {
	assert.Equal(t, "none", Modifiers(0).String())
	assert.Equal(t, "control+option", Modifiers(3).String())
	assert.Equal(t, "shift+command", (ModifierShift | ModifierCommand).String())
	assert.Equal(t, "control+option+7", KeyCombination{Key: 7, Modifiers: 3}.String())
}
