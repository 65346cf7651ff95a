package sentry

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

func TestInit_EmptyDSN(t *testing.T) {
	require.NoError(t, Init(Options{}))
	assert.False(t, IsInitialized())

	// 未初始化时均为空操作
	NewReporter().CaptureError(errors.New("boom"), map[string]string{"migration_version": "0.8.0"})
	Flush(0)
}

func TestRecover(t *testing.T) {
	assert.NotPanics(t, func() {
		defer Recover()
		panic("boom")
	})
}

func TestLoadOrCreateDeviceID(t *testing.T) {
	store := defaults.NewMemoryStore()

	id := loadOrCreateDeviceID(store)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.Equal(t, id, loadOrCreateDeviceID(store))

	assert.Len(t, loadOrCreateDeviceID(nil), 32)
}

func TestBeforeSendHook(t *testing.T) {
	event := &sentry.Event{
		Message:   "open /Users/alice/Library/Preferences/ice.db: denied",
		Exception: []sentry.Exception{{Value: "read /home/bob/.appdata/db/defaults.db"}},
		Tags:      map[string]string{"path": "/Users/alice/x"},
	}

	event = beforeSendHook(event, nil)

	assert.Equal(t, "open /Users/[REDACTED]/Library/Preferences/ice.db: denied", event.Message)
	assert.Equal(t, "read /home/[REDACTED]/.appdata/db/defaults.db", event.Exception[0].Value)
	assert.Equal(t, "/Users/[REDACTED]/x", event.Tags["path"])
}
