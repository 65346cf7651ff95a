package migration

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingConfiguration 待升级的外观配置不存在
	ErrMissingConfiguration = errors.New("missing menu bar appearance configuration")
	// ErrInvalidTable 迁移表定义有误
	ErrInvalidTable = errors.New("invalid migration table")
)

// StepKind 失败步骤的类别，决定错误信息的前缀
type StepKind int

const (
	KindHotkey StepKind = iota
	KindControlItem
	KindAppearanceConfiguration
)

func (k StepKind) String() string {
	switch k {
	case KindHotkey:
		return "hotkeys"
	case KindControlItem:
		return "control items"
	case KindAppearanceConfiguration:
		return "menu bar appearance configuration"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// StepError 为步骤内部的错误附加类别
type StepError struct {
	Kind StepKind
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("error migrating %s: %v", e.Kind, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// InvalidSectionsError 分区数据不是由对象组成的 JSON 数组
type InvalidSectionsError struct {
	// Object 解析出的原始值
	Object any
}

func (e *InvalidSectionsError) Error() string {
	return fmt.Sprintf("invalid menu bar sections JSON object: %v", e.Object)
}

// CombinedError 一组步骤中全部失败的错误，顺序与步骤一致
type CombinedError struct {
	Errors []error
}

func (e *CombinedError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "the following errors occurred: [" + strings.Join(msgs, ", ") + "]"
}

func (e *CombinedError) Unwrap() []error {
	return e.Errors
}
