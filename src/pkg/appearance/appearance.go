// Package appearance 菜单栏外观配置
//
// V1 是单一的扁平配置；V2 将颜色相关的设置拆分为浅色、深色与静态三份
// PartialConfiguration，形状相关的设置仍在顶层。
package appearance

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotAnObject 配置数据不是 JSON 对象（包括 null）
var ErrNotAnObject = errors.New("appearance configuration is not a JSON object")

// Color RGBA 颜色，分量取值 0~1
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

var (
	ColorBlack = Color{Alpha: 1}
	ColorWhite = Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}
)

// GradientStop 渐变中的一个色标
type GradientStop struct {
	Color    Color   `json:"color"`
	Location float64 `json:"location"`
}

// Gradient 线性渐变
type Gradient struct {
	Stops []GradientStop `json:"stops"`
}

// DefaultGradient 默认渐变：白色到黑色
func DefaultGradient() Gradient {
	return Gradient{Stops: []GradientStop{
		{Color: ColorWhite, Location: 0},
		{Color: ColorBlack, Location: 1},
	}}
}

// TintKind 着色方式
type TintKind int

const (
	TintNone TintKind = iota
	TintSolid
	TintGradient
)

func (k TintKind) String() string {
	switch k {
	case TintNone:
		return "none"
	case TintSolid:
		return "solid"
	case TintGradient:
		return "gradient"
	}
	return fmt.Sprintf("TintKind(%d)", int(k))
}

// ShapeKind 菜单栏形状
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeFull
	ShapeSplit
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeFull:
		return "full"
	case ShapeSplit:
		return "split"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// EndCap 形状端点样式
type EndCap int

const (
	EndCapSquare EndCap = iota
	EndCapRound
)

// FullShapeInfo 整体形状的两端样式
type FullShapeInfo struct {
	LeadingEndCap  EndCap `json:"leadingEndCap"`
	TrailingEndCap EndCap `json:"trailingEndCap"`
}

// SplitShapeInfo 分离形状，左右两部分各自有两端样式
type SplitShapeInfo struct {
	Leading  FullShapeInfo `json:"leading"`
	Trailing FullShapeInfo `json:"trailing"`
}

// DefaultFullShapeInfo 两端圆角
func DefaultFullShapeInfo() FullShapeInfo {
	return FullShapeInfo{LeadingEndCap: EndCapRound, TrailingEndCap: EndCapRound}
}

// DefaultSplitShapeInfo 左右两部分均为两端圆角
func DefaultSplitShapeInfo() SplitShapeInfo {
	return SplitShapeInfo{Leading: DefaultFullShapeInfo(), Trailing: DefaultFullShapeInfo()}
}

// PartialConfiguration 随外观模式变化的那部分配置
type PartialConfiguration struct {
	HasShadow    bool     `json:"hasShadow"`
	HasBorder    bool     `json:"hasBorder"`
	BorderColor  Color    `json:"borderColor"`
	BorderWidth  float64  `json:"borderWidth"`
	TintKind     TintKind `json:"tintKind"`
	TintColor    Color    `json:"tintColor"`
	TintGradient Gradient `json:"tintGradient"`
}

// DefaultPartialConfiguration 默认的分模式配置
func DefaultPartialConfiguration() PartialConfiguration {
	return PartialConfiguration{
		HasShadow:    false,
		HasBorder:    false,
		BorderColor:  ColorBlack,
		BorderWidth:  1,
		TintKind:     TintNone,
		TintColor:    ColorBlack,
		TintGradient: DefaultGradient(),
	}
}

// ConfigurationV1 旧版扁平外观配置
type ConfigurationV1 struct {
	HasShadow      bool           `json:"hasShadow"`
	HasBorder      bool           `json:"hasBorder"`
	BorderColor    Color          `json:"borderColor"`
	BorderWidth    float64        `json:"borderWidth"`
	TintKind       TintKind       `json:"tintKind"`
	TintColor      Color          `json:"tintColor"`
	TintGradient   Gradient       `json:"tintGradient"`
	ShapeKind      ShapeKind      `json:"shapeKind"`
	FullShapeInfo  FullShapeInfo  `json:"fullShapeInfo"`
	SplitShapeInfo SplitShapeInfo `json:"splitShapeInfo"`
	IsInset        bool           `json:"isInset"`
}

// ConfigurationV2 当前外观配置
type ConfigurationV2 struct {
	LightModeConfiguration PartialConfiguration `json:"lightModeConfiguration"`
	DarkModeConfiguration  PartialConfiguration `json:"darkModeConfiguration"`
	StaticConfiguration    PartialConfiguration `json:"staticConfiguration"`
	ShapeKind              ShapeKind            `json:"shapeKind"`
	FullShapeInfo          FullShapeInfo        `json:"fullShapeInfo"`
	SplitShapeInfo         SplitShapeInfo       `json:"splitShapeInfo"`
	IsInset                bool                 `json:"isInset"`
	IsDynamic              bool                 `json:"isDynamic"`
}

// DefaultConfigurationV1 返回旧版默认配置
func DefaultConfigurationV1() ConfigurationV1 {
	p := DefaultPartialConfiguration()
	return ConfigurationV1{
		HasShadow:      p.HasShadow,
		HasBorder:      p.HasBorder,
		BorderColor:    p.BorderColor,
		BorderWidth:    p.BorderWidth,
		TintKind:       p.TintKind,
		TintColor:      p.TintColor,
		TintGradient:   p.TintGradient,
		ShapeKind:      ShapeNone,
		FullShapeInfo:  DefaultFullShapeInfo(),
		SplitShapeInfo: DefaultSplitShapeInfo(),
		IsInset:        true,
	}
}

// DefaultConfigurationV2 返回默认配置
func DefaultConfigurationV2() ConfigurationV2 {
	return ConfigurationV2{
		LightModeConfiguration: DefaultPartialConfiguration(),
		DarkModeConfiguration: PartialConfiguration{
			HasShadow:    false,
			HasBorder:    false,
			BorderColor:  ColorWhite,
			BorderWidth:  1,
			TintKind:     TintNone,
			TintColor:    ColorWhite,
			TintGradient: DefaultGradient(),
		},
		StaticConfiguration: DefaultPartialConfiguration(),
		ShapeKind:           ShapeNone,
		FullShapeInfo:       DefaultFullShapeInfo(),
		SplitShapeInfo:      DefaultSplitShapeInfo(),
		IsInset:             true,
		IsDynamic:           false,
	}
}

// Partial 取出 V1 中颜色相关的部分
func (c ConfigurationV1) Partial() PartialConfiguration {
	return PartialConfiguration{
		HasShadow:    c.HasShadow,
		HasBorder:    c.HasBorder,
		BorderColor:  c.BorderColor,
		BorderWidth:  c.BorderWidth,
		TintKind:     c.TintKind,
		TintColor:    c.TintColor,
		TintGradient: c.TintGradient,
	}
}

// Upgrade 以默认 V2 配置为基础，用 V1 的内容覆盖三种模式以及形状设置
func (c ConfigurationV1) Upgrade() ConfigurationV2 {
	v2 := DefaultConfigurationV2()
	partial := c.Partial()
	v2.LightModeConfiguration = partial
	v2.DarkModeConfiguration = partial
	v2.StaticConfiguration = partial
	v2.ShapeKind = c.ShapeKind
	v2.FullShapeInfo = c.FullShapeInfo
	v2.SplitShapeInfo = c.SplitShapeInfo
	v2.IsInset = c.IsInset
	return v2
}

// DecodeV1 解析 V1 配置，缺失字段取默认值
func DecodeV1(data []byte) (ConfigurationV1, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return ConfigurationV1{}, fmt.Errorf("failed to decode appearance configuration: %w", ErrNotAnObject)
	}
	c := DefaultConfigurationV1()
	if err := json.Unmarshal(data, &c); err != nil {
		return ConfigurationV1{}, fmt.Errorf("failed to decode appearance configuration: %w", err)
	}
	return c, nil
}

// DecodeV2 解析 V2 配置，缺失字段取默认值
func DecodeV2(data []byte) (ConfigurationV2, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return ConfigurationV2{}, fmt.Errorf("failed to decode appearance configuration: %w", ErrNotAnObject)
	}
	c := DefaultConfigurationV2()
	if err := json.Unmarshal(data, &c); err != nil {
		return ConfigurationV2{}, fmt.Errorf("failed to decode appearance configuration: %w", err)
	}
	return c, nil
}

// Encode 编码 V2 配置
func (c ConfigurationV2) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appearance configuration: %w", err)
	}
	return data, nil
}
