package sentry

import (
	"strings"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// KeyDeviceID 匿名设备 ID 的存储键
const KeyDeviceID defaults.Key = "SentryDeviceID"

var (
	cachedDeviceID string
	deviceIDOnce   sync.Once
)

// GetAnonymousDeviceID 获取匿名设备 ID
// 首次调用时从存储读取或生成新的 UUID，后续调用返回缓存的值
func GetAnonymousDeviceID(store defaults.Store) string {
	deviceIDOnce.Do(func() {
		cachedDeviceID = loadOrCreateDeviceID(store)
	})
	return cachedDeviceID
}

func loadOrCreateDeviceID(store defaults.Store) string {
	if store == nil {
		return generateUUID()
	}
	if data, err := store.Data(KeyDeviceID); err == nil && len(data) > 0 {
		return string(data)
	}
	id := generateUUID()
	// 保存失败不影响返回
	_ = store.SetData(KeyDeviceID, []byte(id))
	return id
}

// generateUUID 生成去掉连字符的 UUID
func generateUUID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
