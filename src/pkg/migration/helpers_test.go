package migration

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// faultyStore 对指定的键返回错误
type faultyStore struct {
	defaults.Store
	boolErr    error
	setBoolErr error
	dataErr    map[defaults.Key]error
	setDataErr map[defaults.Key]error
}

func (s *faultyStore) Bool(key defaults.Key) (bool, error) {
	if s.boolErr != nil {
		return false, s.boolErr
	}
	return s.Store.Bool(key)
}

func (s *faultyStore) SetBool(key defaults.Key, value bool) error {
	if s.setBoolErr != nil {
		return s.setBoolErr
	}
	return s.Store.SetBool(key, value)
}

func (s *faultyStore) Data(key defaults.Key) ([]byte, error) {
	if err := s.dataErr[key]; err != nil {
		return nil, err
	}
	return s.Store.Data(key)
}

func (s *faultyStore) SetData(key defaults.Key, data []byte) error {
	if err := s.setDataErr[key]; err != nil {
		return err
	}
	return s.Store.SetData(key, data)
}

// withTable 替换迁移表
func withTable(entries []entry) Option {
	return func(m *Manager) {
		m.table = entries
	}
}

type capturedError struct {
	err  error
	tags map[string]string
}

type fakeReporter struct {
	captured []capturedError
}

func (r *fakeReporter) CaptureError(err error, tags map[string]string) {
	r.captured = append(r.captured, capturedError{err: err, tags: tags})
}

func newTestManager(t *testing.T, store defaults.Store, opts ...Option) (*Manager, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	m, err := New(store, nil, append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return m, hook
}

func hasMessage(hook *test.Hook, level logrus.Level, msg string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

func flag(t *testing.T, s defaults.Store, version string) bool {
	t.Helper()
	v, err := s.Bool(defaults.MigrationFlag(version))
	require.NoError(t, err)
	return v
}

func scoped(t *testing.T, s defaults.Store, key defaults.ScopedKey, scope string) any {
	t.Helper()
	v, err := s.Scoped(key, scope)
	require.NoError(t, err)
	return v
}

const appearanceV1JSON = `{
	"hasShadow": true,
	"hasBorder": false,
	"borderColor": {"red": 0, "green": 0, "blue": 0, "alpha": 1},
	"borderWidth": 1,
	"tintKind": 0,
	"tintColor": {"red": 0, "green": 0, "blue": 0, "alpha": 1},
	"tintGradient": {"stops": []},
	"shapeKind": 1,
	"fullShapeInfo": {"leadingEndCap": 1, "trailingEndCap": 1},
	"splitShapeInfo": {"leading": {"leadingEndCap": 1, "trailingEndCap": 1}, "trailing": {"leadingEndCap": 1, "trailingEndCap": 1}},
	"isInset": true
}`
