package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Store 设置存储配置
type Store struct {
	// Path sqlite 数据库文件路径，留空时使用 AppDataPath/db/defaults.db
	Path string `yaml:"path" json:"path"`
	// CacheSize 读缓存容量（条目数），<=0 表示不使用缓存
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

var defaultStore = Store{
	Path:      "",
	CacheSize: 256,
}

func (s *Store) verify() error {
	if s == nil {
		return nil
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("缓存容量不能为负数: %d", s.CacheSize)
	}
	return nil
}

type Log struct {
	OutPutFolder string `yaml:"out_put_folder" json:"out_put_folder"`
	SaveEveryLog bool   `yaml:"save_every_log" json:"save_every_log"`
}

var defaultLog = Log{
	OutPutFolder: "./",
	SaveEveryLog: false,
}

// Sentry 错误上报配置
type Sentry struct {
	// DSN 留空则禁用，也可以通过环境变量 SENTRY_DSN 设置
	DSN         string `yaml:"dsn" json:"dsn"`
	Environment string `yaml:"environment" json:"environment"`
}

var defaultSentry = Sentry{
	Environment: "production",
}

// Config content all config info.
type Config struct {
	File        string `yaml:"-" json:"-"`
	Debug       bool   `yaml:"debug" json:"debug"`
	AppDataPath string `yaml:"app_data_path" json:"app_data_path"`
	Store       Store  `yaml:"store" json:"store"`
	Log         Log    `yaml:"log" json:"log"`
	Sentry      Sentry `yaml:"sentry" json:"sentry"`
}

var defaultConfig = Config{
	Debug:       false,
	AppDataPath: "",
	Store:       defaultStore,
	Log:         defaultLog,
	Sentry:      defaultSentry,
}

// 使用 atomic.Value 存放当前配置指针，避免并发读写造成 data race
var config atomic.Value // stores *Config

func SetCurrentConfig(cfg *Config) {
	config.Store(cfg)
}

func GetCurrentConfig() *Config {
	v := config.Load()
	if v == nil {
		return nil
	}
	return v.(*Config)
}

func NewConfig() *Config {
	config := defaultConfig
	newConfigPostProcess(&config)
	return &config
}

func newConfigPostProcess(c *Config) {
	if strings.TrimSpace(c.AppDataPath) == "" {
		c.AppDataPath = ".appdata"
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = filepath.Join(c.AppDataPath, "db", "defaults.db")
	}
}

// ApplyEnv 使用环境变量覆盖配置（环境变量优先）
func (c *Config) ApplyEnv() {
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		c.Sentry.DSN = dsn
	}
	if db := os.Getenv("MENUBAR_DB"); db != "" {
		c.Store.Path = db
	}
}

// Verify will return an error when this config has problem.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("配置不存在")
	}
	if err := c.Store.verify(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("存储路径不能为空")
	}
	if _, err := os.Stat(c.Log.OutPutFolder); err != nil {
		return fmt.Errorf(`日志输出路径 "%s" 不存在`, c.Log.OutPutFolder)
	}
	return nil
}

func NewConfigWithBytes(b []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(b, &config); err != nil {
		return nil, err
	}
	newConfigPostProcess(&config)
	return &config, nil
}

func NewConfigWithFile(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("can`t open file: %s: %w", file, err)
	}
	config, err := NewConfigWithBytes(b)
	if err != nil {
		return nil, err
	}
	config.File = file
	return config, nil
}
