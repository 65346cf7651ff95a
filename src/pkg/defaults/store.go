// Package defaults 提供应用设置的持久化键值存储
// 对应 macOS 上的 UserDefaults：布尔值、二进制数据以及按 (键, 作用域) 存储的状态栏条目
package defaults

// Key 存储键
type Key string

// 预定义的键常量
const (
	// KeySections 旧版本保存菜单栏分区的 JSON 数组
	KeySections Key = "Sections"
	// KeyHotkeys 快捷键设置
	KeyHotkeys Key = "Hotkeys"
	// KeyMenuBarAppearanceConfiguration 外观配置（V1）
	KeyMenuBarAppearanceConfiguration Key = "MenuBarAppearanceConfiguration"
	// KeyMenuBarAppearanceConfigurationV2 外观配置（V2）
	KeyMenuBarAppearanceConfigurationV2 Key = "MenuBarAppearanceConfigurationV2"
)

// MigrationFlag 返回某个版本迁移完成标记的键，例如 "hasMigrated:0.8.0"
func MigrationFlag(version string) Key {
	return Key("hasMigrated:" + version)
}

// ScopedKey 按作用域（状态栏条目的 autosave name / identifier）存储的键
type ScopedKey string

const (
	// PreferredPosition 状态栏条目的首选位置
	PreferredPosition ScopedKey = "NSStatusItem Preferred Position"
	// Visible 状态栏条目是否可见
	Visible ScopedKey = "NSStatusItem Visible"
)

// Key 返回带作用域的完整键，例如 "NSStatusItem Visible HItem"
func (k ScopedKey) Key(scope string) Key {
	return Key(string(k) + " " + scope)
}

// Store 设置存储接口
// 所有读取在键不存在时返回零值（false / nil），而不是错误
type Store interface {
	Bool(key Key) (bool, error)
	SetBool(key Key, value bool) error

	// Data 键不存在时返回 nil
	Data(key Key) ([]byte, error)
	// SetData 传入 nil 时删除该键
	SetData(key Key, data []byte) error

	// Scoped 键不存在时返回 nil；数值统一为 float64
	Scoped(key ScopedKey, scope string) (any, error)
	// SetScoped 传入 nil 时删除该条目
	SetScoped(key ScopedKey, scope string, value any) error
}
