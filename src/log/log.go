package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/menubar-go/menubar-go/src/configs"
)

// New 按配置初始化全局 logrus Logger 并返回。
// 返回的 io.Closer 用于关闭本次运行的日志文件（没有打开文件时为空操作）。
func New(cfg *configs.Config) (*logrus.Logger, io.Closer, error) {
	logLevel := logrus.InfoLevel
	if cfg != nil && cfg.Debug {
		logLevel = logrus.DebugLevel
	}

	writers := []io.Writer{os.Stderr}
	var closer io.Closer = nopCloser{}
	if cfg != nil && cfg.Log.SaveEveryLog {
		outputFolder := cfg.Log.OutPutFolder
		if _, err := os.Stat(outputFolder); os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("failed to determine log output folder %s: %w", outputFolder, err)
		}
		runID := time.Now().Format("run-2006-01-02-15-04-05")
		logLocation := filepath.Join(outputFolder, runID+".log")
		logFile, err := os.OpenFile(logLocation, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s for output: %w", logLocation, err)
		}
		writers = append(writers, logFile)
		closer = logFile
	}

	logger := logrus.StandardLogger()
	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetReportCaller(cfg != nil && cfg.Debug)
	logger.SetLevel(logLevel)

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
