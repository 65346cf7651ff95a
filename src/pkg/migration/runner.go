package migration

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// performAll 依次执行全部步骤，不因失败中断
// 有失败时返回按步骤顺序排列的 CombinedError
func (m *Manager) performAll(steps []step, logger *logrus.Entry) error {
	var errs []error
	for _, s := range steps {
		if err := s.run(m); err != nil {
			logger.WithField("step", s.name).WithError(err).Debug("migration step failed")
			errs = append(errs, err)
			continue
		}
		logger.WithField("step", s.name).Debug("migration step completed")
	}
	if len(errs) > 0 {
		return &CombinedError{Errors: errs}
	}
	return nil
}

// migrated 读取完成标记
func (m *Manager) migrated(version string) (bool, error) {
	done, err := m.store.Bool(defaults.MigrationFlag(version))
	if err != nil {
		return false, fmt.Errorf("failed to read migration flag for %s: %w", version, err)
	}
	return done, nil
}

// complete 写入完成标记
// 写入失败时该版本会在下次启动重新执行
func (m *Manager) complete(version string, logger *logrus.Entry) {
	if err := m.store.SetBool(defaults.MigrationFlag(version), true); err != nil {
		logger.WithError(err).Error("failed to save migration flag")
		return
	}
	logger.Infof("Successfully migrated to %s settings", version)
}

// runGroup 执行一组步骤，全部成功才写入完成标记
func (m *Manager) runGroup(e entry, logger *logrus.Entry) EntryReport {
	report := EntryReport{Version: e.version}

	done, err := m.migrated(e.version)
	if err != nil {
		report.Status = StatusFailed
		report.Err = err
		return report
	}
	if done {
		report.Status = StatusSkipped
		return report
	}

	if err := m.performAll(e.steps, logger); err != nil {
		report.Status = StatusFailed
		report.Err = err
		return report
	}

	m.complete(e.version, logger)
	report.Status = StatusSucceeded
	return report
}

// runOutcome 执行单个需要报告结果的步骤
func (m *Manager) runOutcome(e entry, logger *logrus.Entry) EntryReport {
	report := EntryReport{Version: e.version}

	done, err := m.migrated(e.version)
	if err != nil {
		report.Status = StatusFailed
		report.Err = err
		return report
	}
	if done {
		report.Status = StatusSkipped
		return report
	}

	result := e.outcome(m)
	if !result.Succeeded() {
		report.Status = StatusFailed
		report.Err = result.Err()
		return report
	}

	m.complete(e.version, logger.WithField("step", e.name))
	if n, ok := result.Notice(); ok {
		report.Status = StatusSucceededWithNotice
		report.Notice = &n
		return report
	}
	report.Status = StatusSucceeded
	return report
}
