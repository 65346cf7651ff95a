package defaults

import "fmt"

// MigrateScoped 将 (key, from) 下的值移动到 (key, to) 并删除旧条目
// 旧条目不存在或 from 与 to 相同时不做任何操作
func MigrateScoped(s Store, key ScopedKey, from, to string) error {
	if from == to {
		return nil
	}
	value, err := s.Scoped(key, from)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", key.Key(from), err)
	}
	if value == nil {
		return nil
	}
	if err := s.SetScoped(key, to, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key.Key(to), err)
	}
	if err := s.SetScoped(key, from, nil); err != nil {
		return fmt.Errorf("failed to clear %q: %w", key.Key(from), err)
	}
	return nil
}
