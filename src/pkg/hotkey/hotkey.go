// Package hotkey 保存全局快捷键设置
package hotkey

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// KeyCode 虚拟键码
type KeyCode int

// Modifiers 修饰键位掩码
type Modifiers int

const (
	ModifierControl Modifiers = 1 << iota
	ModifierOption
	ModifierShift
	ModifierCommand
)

var modifierNames = []struct {
	m    Modifiers
	name string
}{
	{ModifierControl, "control"},
	{ModifierOption, "option"},
	{ModifierShift, "shift"},
	{ModifierCommand, "command"},
}

func (m Modifiers) String() string {
	var names []string
	for _, mn := range modifierNames {
		if m&mn.m != 0 {
			names = append(names, mn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// KeyCombination 按键组合
type KeyCombination struct {
	Key       KeyCode   `json:"key"`
	Modifiers Modifiers `json:"modifiers"`
}

func (k KeyCombination) String() string {
	return fmt.Sprintf("%s+%d", k.Modifiers, k.Key)
}

// Action 快捷键触发的动作
type Action string

const (
	ActionToggleHiddenSection       Action = "toggleHiddenSection"
	ActionToggleAlwaysHiddenSection Action = "toggleAlwaysHiddenSection"
)

// Settings 快捷键设置，以 JSON 对象保存在 defaults.KeyHotkeys 下
type Settings struct {
	store defaults.Store
}

// NewSettings 创建快捷键设置
func NewSettings(store defaults.Store) *Settings {
	return &Settings{store: store}
}

func (s *Settings) load() (map[Action]KeyCombination, error) {
	data, err := s.store.Data(defaults.KeyHotkeys)
	if err != nil {
		return nil, err
	}
	hotkeys := make(map[Action]KeyCombination)
	if data == nil {
		return hotkeys, nil
	}
	if err := json.Unmarshal(data, &hotkeys); err != nil {
		return nil, fmt.Errorf("failed to decode hotkeys: %w", err)
	}
	return hotkeys, nil
}

// KeyCombination 返回动作绑定的按键组合，未绑定时返回 nil
func (s *Settings) KeyCombination(action Action) (*KeyCombination, error) {
	hotkeys, err := s.load()
	if err != nil {
		return nil, err
	}
	kc, ok := hotkeys[action]
	if !ok {
		return nil, nil
	}
	return &kc, nil
}

// SetKeyCombination 为动作绑定按键组合并立即保存
func (s *Settings) SetKeyCombination(action Action, kc KeyCombination) error {
	hotkeys, err := s.load()
	if err != nil {
		return err
	}
	hotkeys[action] = kc
	data, err := json.Marshal(hotkeys)
	if err != nil {
		return fmt.Errorf("failed to encode hotkeys: %w", err)
	}
	return s.store.SetData(defaults.KeyHotkeys, data)
}

// Actions 返回已绑定按键的全部动作（按名称排序）
func (s *Settings) Actions() ([]Action, error) {
	hotkeys, err := s.load()
	if err != nil {
		return nil, err
	}
	actions := make([]Action, 0, len(hotkeys))
	for a := range hotkeys {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions, nil
}
