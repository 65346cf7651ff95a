package migration

import (
	"github.com/menubar-go/menubar-go/src/pkg/appearance"
	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// migrateAppearanceConfiguration 将 V1 外观配置升级为 V2，V1 保留不删
func (m *Manager) migrateAppearanceConfiguration() Result {
	data, err := m.store.Data(defaults.KeyMenuBarAppearanceConfiguration)
	if err != nil {
		return Failure(&StepError{Kind: KindAppearanceConfiguration, Err: err})
	}
	if data == nil {
		return Failure(&StepError{Kind: KindAppearanceConfiguration, Err: ErrMissingConfiguration})
	}

	v1, err := appearance.DecodeV1(data)
	if err != nil {
		return Failure(&StepError{Kind: KindAppearanceConfiguration, Err: err})
	}
	v2, err := v1.Upgrade().Encode()
	if err != nil {
		return Failure(&StepError{Kind: KindAppearanceConfiguration, Err: err})
	}
	if err := m.store.SetData(defaults.KeyMenuBarAppearanceConfigurationV2, v2); err != nil {
		return Failure(&StepError{Kind: KindAppearanceConfiguration, Err: err})
	}
	return Success()
}
