package defaults

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStores 返回需要以相同语义通过测试的全部存储实现
func newStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	cached, err := NewSQLiteStore(filepath.Join(dir, "cached", "defaults.db"), 8)
	require.NoError(t, err)
	t.Cleanup(func() { cached.Close() })

	uncached, err := NewSQLiteStore(filepath.Join(dir, "uncached", "defaults.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { uncached.Close() })

	return map[string]Store{
		"memory":          NewMemoryStore(),
		"sqlite":          cached,
		"sqlite_no_cache": uncached,
	}
}

func TestStore_Bool(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			key := MigrationFlag("0.8.0")
			v, err := s.Bool(key)
			require.NoError(t, err)
			assert.False(t, v)

			require.NoError(t, s.SetBool(key, true))
			v, err = s.Bool(key)
			require.NoError(t, err)
			assert.True(t, v)

			require.NoError(t, s.SetBool(key, false))
			v, err = s.Bool(key)
			require.NoError(t, err)
			assert.False(t, v)
		})
	}
}

func TestStore_Data(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			data, err := s.Data(KeySections)
			require.NoError(t, err)
			assert.Nil(t, data)

			require.NoError(t, s.SetData(KeySections, []byte(`[{"name":"Hidden"}]`)))
			data, err = s.Data(KeySections)
			require.NoError(t, err)
			assert.Equal(t, `[{"name":"Hidden"}]`, string(data))

			// 修改返回值不影响存储内容
			data[0] = 'x'
			again, err := s.Data(KeySections)
			require.NoError(t, err)
			assert.Equal(t, `[{"name":"Hidden"}]`, string(again))

			require.NoError(t, s.SetData(KeySections, nil))
			data, err = s.Data(KeySections)
			require.NoError(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestStore_Scoped(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Scoped(PreferredPosition, "HItem")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, s.SetScoped(PreferredPosition, "HItem", 42))
			require.NoError(t, s.SetScoped(Visible, "HItem", false))

			v, err = s.Scoped(PreferredPosition, "HItem")
			require.NoError(t, err)
			assert.Equal(t, float64(42), v)

			v, err = s.Scoped(Visible, "HItem")
			require.NoError(t, err)
			assert.Equal(t, false, v)

			// 不同作用域互不影响
			v, err = s.Scoped(PreferredPosition, "AHItem")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, s.SetScoped(PreferredPosition, "HItem", nil))
			v, err = s.Scoped(PreferredPosition, "HItem")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetBool("shared", true))
			data, err := s.Data("shared")
			require.NoError(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestMigrateScoped(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetScoped(PreferredPosition, "HItem", 120.5))

			require.NoError(t, MigrateScoped(s, PreferredPosition, "HItem", "Ice.ControlItem.Hidden"))

			v, err := s.Scoped(PreferredPosition, "Ice.ControlItem.Hidden")
			require.NoError(t, err)
			assert.Equal(t, 120.5, v)

			v, err = s.Scoped(PreferredPosition, "HItem")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestMigrateScoped_MissingSourceIsNoop(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SetScoped(Visible, "Ice.ControlItem.Hidden", true))

	require.NoError(t, MigrateScoped(s, Visible, "never-written", "Ice.ControlItem.Hidden"))

	v, err := s.Scoped(Visible, "Ice.ControlItem.Hidden")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestMigrateScoped_SameScopeKeepsValue(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SetScoped(Visible, "HItem", true))

	require.NoError(t, MigrateScoped(s, Visible, "HItem", "HItem"))

	v, err := s.Scoped(Visible, "HItem")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "defaults.db")

	s, err := NewSQLiteStore(dbPath, 4)
	require.NoError(t, err)
	require.NoError(t, s.SetBool(MigrationFlag("0.10.0"), true))
	require.NoError(t, s.SetScoped(PreferredPosition, "Ice.ControlItem.IceIcon", 3))
	require.NoError(t, s.Close())

	// 再次打开时表结构已是最新，数据保留
	s, err = NewSQLiteStore(dbPath, 4)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, dbPath, s.Path())

	v, err := s.Bool(MigrationFlag("0.10.0"))
	require.NoError(t, err)
	assert.True(t, v)

	pos, err := s.Scoped(PreferredPosition, "Ice.ControlItem.IceIcon")
	require.NoError(t, err)
	assert.Equal(t, float64(3), pos)
}

func TestMemoryStore_Snapshot(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SetBool(MigrationFlag("0.8.0"), true))
	require.NoError(t, s.SetScoped(Visible, "HItem", false))

	assert.Equal(t, map[string]string{
		"flag/hasMigrated:0.8.0":                 "true",
		"status_item/NSStatusItem Visible HItem": "false",
	}, s.Snapshot())
}

func TestScopedKey_Key(t *testing.T) {
	assert.Equal(t, Key("NSStatusItem Preferred Position HItem"), PreferredPosition.Key("HItem"))
	assert.Equal(t, Key("hasMigrated:0.11.10"), MigrationFlag("0.11.10"))
}
