package migration

import (
	"github.com/tidwall/gjson"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
	"github.com/menubar-go/menubar-go/src/pkg/hotkey"
	"github.com/menubar-go/menubar-go/src/pkg/menubar"
)

// 0.8.0 之前快捷键与控制条目都保存在分区数组中

var sectionHotkeyActions = []struct {
	section menubar.SectionName
	action  hotkey.Action
}{
	{menubar.SectionHidden, hotkey.ActionToggleHiddenSection},
	{menubar.SectionAlwaysHidden, hotkey.ActionToggleAlwaysHiddenSection},
}

// migrateHotkeys 将隐藏分区与始终隐藏分区上的快捷键移到快捷键设置中
// 没有绑定或格式不对（hotkey 中任一字段不是整数）的分区直接跳过
func (m *Manager) migrateHotkeys() error {
	sections, ok, err := m.sectionArray()
	if err != nil {
		return &StepError{Kind: KindHotkey, Err: err}
	}
	if !ok {
		return nil
	}

	for _, sa := range sectionHotkeyActions {
		section, found := findSection(sections, sa.section.DeprecatedRawValue())
		if !found {
			continue
		}
		fields, ok := intMapping(section.Get("hotkey"))
		if !ok {
			continue
		}
		key, hasKey := fields["key"]
		modifiers, hasModifiers := fields["modifiers"]
		if !hasKey || !hasModifiers {
			continue
		}
		kc := hotkey.KeyCombination{Key: hotkey.KeyCode(key), Modifiers: hotkey.Modifiers(modifiers)}
		if err := m.hotkeys.SetKeyCombination(sa.action, kc); err != nil {
			return &StepError{Kind: KindHotkey, Err: err}
		}
	}
	return nil
}

// migrateControlItems 将控制条目的 autosaveName 换成 identifier，
// 并把按 autosave name 保存的位置与可见性移到新的 identifier 下
// 结构不完整的分区不会写回
func (m *Manager) migrateControlItems() error {
	sections, ok, err := m.sectionArray()
	if err != nil {
		return &StepError{Kind: KindControlItem, Err: err}
	}
	if !ok {
		return nil
	}

	rebuilt := make([]any, 0, len(sections))
	for _, name := range menubar.AllSectionNames() {
		section, found := findSection(sections, name.DeprecatedRawValue())
		if !found {
			continue
		}
		ci := section.Get("controlItem")
		if !ci.IsObject() {
			continue
		}
		autosaveName := ci.Get("autosaveName")
		if autosaveName.Type != gjson.String {
			continue
		}

		sectionMap, err := decodeObject(section.Raw)
		if err != nil {
			return &StepError{Kind: KindControlItem, Err: err}
		}
		controlItem, err := decodeObject(ci.Raw)
		if err != nil {
			return &StepError{Kind: KindControlItem, Err: err}
		}
		identifier := name.ControlItemIdentifier().RawValue()
		delete(controlItem, "autosaveName")
		controlItem["identifier"] = identifier

		for _, key := range []defaults.ScopedKey{defaults.PreferredPosition, defaults.Visible} {
			if err := defaults.MigrateScoped(m.store, key, autosaveName.Str, identifier); err != nil {
				return &StepError{Kind: KindControlItem, Err: err}
			}
		}

		sectionMap["controlItem"] = controlItem
		rebuilt = append(rebuilt, sectionMap)
	}

	if err := m.writeSections(rebuilt); err != nil {
		return &StepError{Kind: KindControlItem, Err: err}
	}
	return nil
}

// clearSections 分区数组不再保存
func (m *Manager) clearSections() error {
	return m.store.SetData(defaults.KeySections, nil)
}
