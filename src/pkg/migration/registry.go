package migration

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// defaultTable 按发布版本排列的全部迁移
// 后面的迁移依赖前面的迁移已完成的数据整理，顺序不可调整
func defaultTable() []entry {
	return []entry{
		{
			version: "0.8.0",
			steps: []step{
				{name: "hotkeys", run: (*Manager).migrateHotkeys},
				{name: "control_items", run: (*Manager).migrateControlItems},
				{name: "sections", run: (*Manager).clearSections},
			},
		},
		{
			version: "0.10.0",
			steps: []step{
				{name: "control_item_identifiers", run: (*Manager).migrateControlItemIdentifiers},
			},
		},
		{
			version: "0.10.1",
			name:    "control_item_visibility",
			outcome: (*Manager).resetCorruptedControlItems,
		},
		{
			version: "0.11.10",
			name:    "appearance_configuration",
			outcome: (*Manager).migrateAppearanceConfiguration,
		},
	}
}

// validateTable 检查每一项的定义，并要求版本号严格递增
func validateTable(entries []entry) error {
	var prev *semver.Version
	for i, e := range entries {
		v, err := semver.StrictNewVersion(e.version)
		if err != nil {
			return fmt.Errorf("%w: entry %d: bad version %q: %v", ErrInvalidTable, i, e.version, err)
		}
		if (len(e.steps) == 0) == (e.outcome == nil) {
			return fmt.Errorf("%w: entry %s must have either steps or an outcome", ErrInvalidTable, e.version)
		}
		for _, s := range e.steps {
			if s.run == nil {
				return fmt.Errorf("%w: entry %s: step %q has no function", ErrInvalidTable, e.version, s.name)
			}
		}
		if prev != nil && !prev.LessThan(v) {
			return fmt.Errorf("%w: version %s must be greater than %s", ErrInvalidTable, v, prev)
		}
		prev = v
	}
	return nil
}
