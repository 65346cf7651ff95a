package migration

import (
	"github.com/menubar-go/menubar-go/src/pkg/defaults"
	"github.com/menubar-go/menubar-go/src/pkg/menubar"
	"github.com/menubar-go/menubar-go/src/pkg/notice"
)

// CorruptionNotice 0.10.0 损坏了控制条目数据，位置被重置时展示
var CorruptionNotice = notice.Notice{
	Title: "Due to a bug in the 0.10.0 release, the data for Ice's menu bar items was corrupted and their positions had to be reset.",
	Body:  "Our sincerest apologies for the inconvenience.",
}

// resetCorruptedControlItems 清除全部可见性记录
// 若有条目被隐藏却没有位置记录，说明数据已损坏，清除全部位置并提示用户
func (m *Manager) resetCorruptedControlItems() Result {
	ids := menubar.AllControlItemIdentifiers()
	corrupted := false

	for _, id := range ids {
		visible, err := m.store.Scoped(defaults.Visible, id.RawValue())
		if err != nil {
			return Failure(&StepError{Kind: KindControlItem, Err: err})
		}
		if hidden, ok := visible.(bool); ok && !hidden {
			position, err := m.store.Scoped(defaults.PreferredPosition, id.RawValue())
			if err != nil {
				return Failure(&StepError{Kind: KindControlItem, Err: err})
			}
			if position == nil {
				corrupted = true
			}
		}
		if err := m.store.SetScoped(defaults.Visible, id.RawValue(), nil); err != nil {
			return Failure(&StepError{Kind: KindControlItem, Err: err})
		}
	}

	if !corrupted {
		return Success()
	}
	for _, id := range ids {
		if err := m.store.SetScoped(defaults.PreferredPosition, id.RawValue(), nil); err != nil {
			return Failure(&StepError{Kind: KindControlItem, Err: err})
		}
	}
	return SuccessWithNotice(CorruptionNotice)
}
