package defaults

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bluele/gcache"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore SQLite 存储实现
// 读取结果缓存在 LRU 缓存中，写入时同步更新缓存
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	cache  gcache.Cache
	mu     sync.RWMutex
	logger *logrus.Entry
}

// NewSQLiteStore 打开（必要时创建）SQLite 存储
// cacheSize <= 0 时不使用读缓存
func NewSQLiteStore(dbPath string, cacheSize int) (*SQLiteStore, error) {
	// 确保目录存在
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	// 设置 SQLite 优化参数
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	logger := logrus.WithFields(logrus.Fields{
		"component": "defaults",
		"db_path":   dbPath,
	})
	if err := migrateSchema(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{
		db:     db,
		dbPath: dbPath,
		logger: logger,
	}
	if cacheSize > 0 {
		s.cache = gcache.New(cacheSize).LRU().Build()
	}
	return s, nil
}

// Close 关闭数据库
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache != nil {
		s.cache.Purge()
	}
	return s.db.Close()
}

// Path 返回数据库文件路径
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

func cacheKey(namespace string, key Key) string {
	return namespace + "/" + string(key)
}

// get 返回原始值，键不存在时返回 nil, false
func (s *SQLiteStore) get(namespace string, key Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache != nil {
		if v, err := s.cache.Get(cacheKey(namespace, key)); err == nil {
			return v.([]byte), true, nil
		}
	}

	var value []byte
	err := s.db.QueryRow(
		"SELECT value FROM defaults WHERE namespace = ? AND key = ?",
		namespace, string(key),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("查询 %s/%s 失败: %w", namespace, key, err)
	}
	if value == nil {
		value = []byte{}
	}
	if s.cache != nil {
		_ = s.cache.Set(cacheKey(namespace, key), value)
	}
	return value, true, nil
}

// put 写入值，value 为 nil 时删除
func (s *SQLiteStore) put(namespace string, key Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		if _, err := s.db.Exec(
			"DELETE FROM defaults WHERE namespace = ? AND key = ?",
			namespace, string(key),
		); err != nil {
			return fmt.Errorf("删除 %s/%s 失败: %w", namespace, key, err)
		}
		if s.cache != nil {
			s.cache.Remove(cacheKey(namespace, key))
		}
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO defaults (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, strftime('%s', 'now'))
		 ON CONFLICT(namespace, key) DO UPDATE SET
		 value = excluded.value,
		 updated_at = strftime('%s', 'now')`,
		namespace, string(key), value,
	)
	if err != nil {
		return fmt.Errorf("保存 %s/%s 失败: %w", namespace, key, err)
	}
	if s.cache != nil {
		stored := make([]byte, len(value))
		copy(stored, value)
		_ = s.cache.Set(cacheKey(namespace, key), stored)
	}
	return nil
}

func (s *SQLiteStore) Bool(key Key) (bool, error) {
	raw, ok, err := s.get(namespaceFlag, key)
	if err != nil || !ok {
		return false, err
	}
	return decodeBool(raw)
}

func (s *SQLiteStore) SetBool(key Key, value bool) error {
	return s.put(namespaceFlag, key, encodeBool(value))
}

func (s *SQLiteStore) Data(key Key) ([]byte, error) {
	raw, ok, err := s.get(namespaceData, key)
	if err != nil || !ok {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *SQLiteStore) SetData(key Key, data []byte) error {
	return s.put(namespaceData, key, data)
}

func (s *SQLiteStore) Scoped(key ScopedKey, scope string) (any, error) {
	raw, ok, err := s.get(namespaceStatusItem, key.Key(scope))
	if err != nil || !ok {
		return nil, err
	}
	return decodeScoped(raw)
}

func (s *SQLiteStore) SetScoped(key ScopedKey, scope string, value any) error {
	if value == nil {
		return s.put(namespaceStatusItem, key.Key(scope), nil)
	}
	raw, err := encodeScoped(value)
	if err != nil {
		return err
	}
	return s.put(namespaceStatusItem, key.Key(scope), raw)
}
