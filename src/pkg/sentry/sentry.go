// Package sentry 将失败的迁移上报到 Sentry
// 未配置 DSN 时所有函数均为空操作
package sentry

import (
	"regexp"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

var (
	initialized bool
	initMu      sync.RWMutex
)

// 上报前从消息中去除的本地路径，例如 /Users/<name>/...
var homePathPattern = regexp.MustCompile(`(/Users|/home)/[^/\s"]+`)

// Options Sentry 初始化参数
type Options struct {
	DSN         string
	Environment string
	Release     string
	// Store 用于保存匿名设备 ID，可为 nil
	Store defaults.Store
}

// Init 初始化 Sentry SDK，DSN 为空时不初始化
func Init(opts Options) error {
	if opts.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		AttachStacktrace: true,
		BeforeSend:       beforeSendHook,
		SampleRate:       1.0,
	})
	if err != nil {
		return err
	}

	deviceID := GetAnonymousDeviceID(opts.Store)
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: deviceID})
	})

	initMu.Lock()
	initialized = true
	initMu.Unlock()
	return nil
}

// IsInitialized 返回 Sentry 是否已初始化
func IsInitialized() bool {
	initMu.RLock()
	defer initMu.RUnlock()
	return initialized
}

// Flush 刷新待发送事件（程序退出前调用）
func Flush(timeout time.Duration) {
	if !IsInitialized() {
		return
	}
	sentry.Flush(timeout)
}

// Recover 捕获 panic 并上报，不再重新 panic
// 必须先调用 recover()，再检查 Sentry 状态
func Recover() {
	err := recover()
	if err == nil {
		return
	}
	if IsInitialized() {
		if hub := sentry.CurrentHub(); hub != nil {
			hub.Recover(err)
		}
	}
}

// Reporter 将错误连同标签一起上报
type Reporter struct{}

// NewReporter 创建 Reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// CaptureError 上报错误
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if !IsInitialized() || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

func beforeSendHook(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	event.Message = sanitizeString(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = sanitizeString(event.Exception[i].Value)
	}
	for k, v := range event.Tags {
		event.Tags[k] = sanitizeString(v)
	}
	return event
}

func sanitizeString(s string) string {
	return homePathPattern.ReplaceAllString(s, "$1/[REDACTED]")
}
