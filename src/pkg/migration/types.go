package migration

import (
	"github.com/menubar-go/menubar-go/src/pkg/notice"
)

// Status 一条迁移在本次运行中的结果
type Status string

const (
	StatusSkipped             Status = "skipped"
	StatusSucceeded           Status = "succeeded"
	StatusSucceededWithNotice Status = "succeeded_with_notice"
	StatusFailed              Status = "failed"
)

type resultKind int

const (
	resultSuccess resultKind = iota
	resultSuccessWithNotice
	resultFailure
)

// Result 需要单独报告结果的迁移步骤的返回值
type Result struct {
	kind   resultKind
	notice notice.Notice
	err    error
}

// Success 迁移成功
func Success() Result {
	return Result{kind: resultSuccess}
}

// SuccessWithNotice 迁移成功，但需要告知用户
func SuccessWithNotice(n notice.Notice) Result {
	return Result{kind: resultSuccessWithNotice, notice: n}
}

// Failure 迁移失败，完成标记不会被写入
func Failure(err error) Result {
	return Result{kind: resultFailure, err: err}
}

// Succeeded 成功（包括带提示的成功）
func (r Result) Succeeded() bool {
	return r.kind != resultFailure
}

// Notice 带提示的成功时返回提示
func (r Result) Notice() (notice.Notice, bool) {
	return r.notice, r.kind == resultSuccessWithNotice
}

// Err 失败时返回错误
func (r Result) Err() error {
	return r.err
}

// step 组内的一个步骤
type step struct {
	name string
	run  func(m *Manager) error
}

// entry 迁移表中的一项，对应一个发布版本
// steps 与 outcome 二者取其一
type entry struct {
	version string
	steps   []step
	name    string
	outcome func(m *Manager) Result
}

// EntryReport 单条迁移的运行结果
type EntryReport struct {
	Version string
	Status  Status
	Err     error
	Notice  *notice.Notice
}

// Report 一次 RunAll 的结果，按迁移表顺序排列
type Report struct {
	RunID   string
	Entries []EntryReport
}

// Failed 返回失败的条目
func (r *Report) Failed() []EntryReport {
	var failed []EntryReport
	for _, e := range r.Entries {
		if e.Status == StatusFailed {
			failed = append(failed, e)
		}
	}
	return failed
}

// Notices 返回本次运行产生的提示
func (r *Report) Notices() []notice.Notice {
	var notices []notice.Notice
	for _, e := range r.Entries {
		if e.Notice != nil {
			notices = append(notices, *e.Notice)
		}
	}
	return notices
}
