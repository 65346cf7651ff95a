package appearance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v1JSON = `{
	"hasShadow": true,
	"hasBorder": false,
	"borderColor": {"red": 0.5, "green": 0.5, "blue": 0.5, "alpha": 1},
	"borderWidth": 2,
	"tintKind": 1,
	"tintColor": {"red": 1, "green": 0, "blue": 0, "alpha": 0.4},
	"tintGradient": {"stops": []},
	"shapeKind": 2,
	"fullShapeInfo": {"leadingEndCap": 0, "trailingEndCap": 1},
	"splitShapeInfo": {"leading": {"leadingEndCap": 1, "trailingEndCap": 0}, "trailing": {"leadingEndCap": 0, "trailingEndCap": 1}},
	"isInset": false
}`

func TestConfigurationV1_Upgrade(t *testing.T) {
	v1, err := DecodeV1([]byte(v1JSON))
	require.NoError(t, err)

	v2 := v1.Upgrade()
	for _, p := range []PartialConfiguration{v2.LightModeConfiguration, v2.DarkModeConfiguration, v2.StaticConfiguration} {
		assert.True(t, p.HasShadow)
		assert.False(t, p.HasBorder)
		assert.Equal(t, float64(2), p.BorderWidth)
		assert.Equal(t, TintSolid, p.TintKind)
		assert.Equal(t, Color{Red: 1, Alpha: 0.4}, p.TintColor)
		assert.Empty(t, p.TintGradient.Stops)
	}
	assert.Equal(t, ShapeSplit, v2.ShapeKind)
	assert.Equal(t, FullShapeInfo{LeadingEndCap: EndCapSquare, TrailingEndCap: EndCapRound}, v2.FullShapeInfo)
	assert.Equal(t, EndCapRound, v2.SplitShapeInfo.Leading.LeadingEndCap)
	assert.False(t, v2.IsInset)
	assert.False(t, v2.IsDynamic)
}

func TestConfigurationV2_EncodeDecode(t *testing.T) {
	v2 := DefaultConfigurationV2()
	v2.IsDynamic = true
	data, err := v2.Encode()
	require.NoError(t, err)

	got, err := DecodeV2(data)
	require.NoError(t, err)
	assert.Equal(t, v2, got)

	// 缺失字段回落到默认值
	got, err = DecodeV2([]byte(`{"isInset": false}`))
	require.NoError(t, err)
	assert.False(t, got.IsInset)
	assert.Equal(t, DefaultConfigurationV2().DarkModeConfiguration, got.DarkModeConfiguration)
}

func TestDecodeV1_Invalid(t *testing.T) {
	_, err := DecodeV1([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
	_, err = DecodeV1([]byte(`{"hasShadow": "yes"}`))
	assert.Error(t, err)
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "gradient", TintGradient.String())
	assert.Equal(t, "full", ShapeFull.String())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}

func TestDecodeV1_NotAnObject(t *testing.T) {
	for _, data := range []string{`null`, `[]`, `"config"`, `42`, ``} {
		_, err := DecodeV1([]byte(data))
		assert.ErrorIs(t, err, ErrNotAnObject, data)

		_, err = DecodeV2([]byte(data))
		assert.ErrorIs(t, err, ErrNotAnObject, data)
	}
}

func TestDecodeV1_MissingFieldsUseDefaults(t *testing.T) {
	v1, err := DecodeV1([]byte(`{"hasShadow": true}`))
	require.NoError(t, err)

	want := DefaultConfigurationV1()
	want.HasShadow = true
	assert.Equal(t, want, v1)
	assert.Equal(t, float64(1), v1.BorderWidth)
	assert.Equal(t, ColorBlack, v1.TintColor)
	assert.NotEmpty(t, v1.TintGradient.Stops)
	assert.True(t, v1.IsInset)
}
