package migration

import (
	"github.com/menubar-go/menubar-go/src/pkg/defaults"
	"github.com/menubar-go/menubar-go/src/pkg/menubar"
)

// migrateControlItemIdentifiers 0.10.0 起控制条目使用带前缀的新标识
func (m *Manager) migrateControlItemIdentifiers() error {
	for _, id := range menubar.AllControlItemIdentifiers() {
		if err := defaults.MigrateScoped(m.store, defaults.PreferredPosition, id.DeprecatedRawValue(), id.RawValue()); err != nil {
			return &StepError{Kind: KindControlItem, Err: err}
		}
	}
	return nil
}
