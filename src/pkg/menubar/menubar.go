// Package menubar 定义菜单栏分区与控制条目的标识
// 包含历史版本使用过的旧名称，供设置迁移使用
package menubar

// SectionName 菜单栏分区名称
type SectionName string

const (
	SectionVisible      SectionName = "visible"
	SectionHidden       SectionName = "hidden"
	SectionAlwaysHidden SectionName = "alwaysHidden"
)

// AllSectionNames 按固定顺序返回全部分区
func AllSectionNames() []SectionName {
	return []SectionName{SectionVisible, SectionHidden, SectionAlwaysHidden}
}

// DeprecatedRawValue 返回旧版本保存分区时使用的名称
func (n SectionName) DeprecatedRawValue() string {
	switch n {
	case SectionVisible:
		return "Visible"
	case SectionHidden:
		return "Hidden"
	case SectionAlwaysHidden:
		return "Always Hidden"
	}
	return string(n)
}

// ControlItemIdentifier 返回该分区对应的控制条目
func (n SectionName) ControlItemIdentifier() ControlItemIdentifier {
	switch n {
	case SectionHidden:
		return ControlItemHidden
	case SectionAlwaysHidden:
		return ControlItemAlwaysHidden
	}
	return ControlItemIceIcon
}

// ControlItemIdentifier 控制条目标识，值为当前版本使用的 autosave name
type ControlItemIdentifier string

const (
	ControlItemIceIcon      ControlItemIdentifier = "Ice.ControlItem.IceIcon"
	ControlItemHidden       ControlItemIdentifier = "Ice.ControlItem.Hidden"
	ControlItemAlwaysHidden ControlItemIdentifier = "Ice.ControlItem.AlwaysHidden"
)

// AllControlItemIdentifiers 按固定顺序返回全部控制条目
func AllControlItemIdentifiers() []ControlItemIdentifier {
	return []ControlItemIdentifier{ControlItemIceIcon, ControlItemHidden, ControlItemAlwaysHidden}
}

// RawValue 返回当前版本的标识字符串
func (id ControlItemIdentifier) RawValue() string {
	return string(id)
}

// DeprecatedRawValue 返回 0.10.0 之前使用的标识字符串
func (id ControlItemIdentifier) DeprecatedRawValue() string {
	switch id {
	case ControlItemIceIcon:
		return "IceIcon"
	case ControlItemHidden:
		return "HItem"
	case ControlItemAlwaysHidden:
		return "AHItem"
	}
	return string(id)
}
