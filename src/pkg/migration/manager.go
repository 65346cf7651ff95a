package migration

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
	"github.com/menubar-go/menubar-go/src/pkg/hotkey"
	"github.com/menubar-go/menubar-go/src/pkg/notice"
)

// ErrorReporter 接收失败的迁移，例如上报到 Sentry
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
}

// Manager 设置迁移管理器
type Manager struct {
	store     defaults.Store
	hotkeys   *hotkey.Settings
	table     []entry
	logger    *logrus.Entry
	presenter notice.Presenter
	reporter  ErrorReporter
	metrics   *Metrics
}

// Option 配置 Manager
type Option func(m *Manager)

// WithLogger 指定日志输出，默认为 logrus 标准 logger
func WithLogger(logger *logrus.Logger) Option {
	return func(m *Manager) {
		m.logger = logger.WithField("component", "migration")
	}
}

// WithPresenter 指定提示的展示方式，默认写入日志
func WithPresenter(p notice.Presenter) Option {
	return func(m *Manager) {
		m.presenter = p
	}
}

// WithReporter 失败的迁移额外交给 reporter
func WithReporter(r ErrorReporter) Option {
	return func(m *Manager) {
		m.reporter = r
	}
}

// WithMetrics 记录每条迁移的结果
func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// New 创建迁移管理器
func New(store defaults.Store, hotkeys *hotkey.Settings, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if hotkeys == nil {
		hotkeys = hotkey.NewSettings(store)
	}
	m := &Manager{
		store:   store,
		hotkeys: hotkeys,
		table:   defaultTable(),
		logger:  logrus.WithField("component", "migration"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.presenter == nil {
		m.presenter = notice.NewLogPresenter(m.logger.Logger)
	}
	if err := validateTable(m.table); err != nil {
		return nil, err
	}
	return m, nil
}

// RunAll 按顺序执行全部迁移
// 已完成的迁移直接跳过；失败只记录日志，不影响后续迁移，下次启动时重试
func (m *Manager) RunAll() *Report {
	report := &Report{RunID: newRunID()}
	logger := m.logger.WithField("run_id", report.RunID)

	for _, e := range m.table {
		entryLogger := logger.WithField("version", e.version)
		var er EntryReport
		if e.outcome != nil {
			er = m.runOutcome(e, entryLogger)
		} else {
			er = m.runGroup(e, entryLogger)
		}
		m.dispatch(er, entryLogger)
		report.Entries = append(report.Entries, er)
	}
	return report
}

// dispatch 处理单条迁移的结果：失败记录日志，提示交给 presenter
func (m *Manager) dispatch(er EntryReport, logger *logrus.Entry) {
	m.metrics.observe(er.Version, er.Status)

	switch er.Status {
	case StatusFailed:
		logger.Errorf("Migration failed with error: %v", er.Err)
		if m.reporter != nil {
			m.reporter.CaptureError(er.Err, map[string]string{"migration_version": er.Version})
		}
	case StatusSucceededWithNotice:
		m.presenter.Present(*er.Notice)
	}
}

func newRunID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
