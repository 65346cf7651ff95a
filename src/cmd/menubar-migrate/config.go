package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/menubar-go/menubar-go/src/configs"
)

// loadEnvFile 读取 .env，文件不存在时忽略
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// getConfig 依次尝试 --config 指定的文件、可执行文件旁的 config.yml，都没有时使用默认配置
func getConfig(file string) (*configs.Config, error) {
	if file != "" {
		return configs.NewConfigWithFile(file)
	}
	if config, err := getConfigBesidesExecutable(); err == nil {
		return config, nil
	}
	return configs.NewConfig(), nil
}

func getConfigBesidesExecutable() (*configs.Config, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return configs.NewConfigWithFile(filepath.Join(filepath.Dir(exePath), "config.yml"))
}
