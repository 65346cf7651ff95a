package migration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/menubar-go/menubar-go/src/pkg/defaults"
)

// ErrMalformedSections 分区数据不是合法的 JSON
var ErrMalformedSections = errors.New("malformed menu bar sections JSON")

// sectionArray 读取旧版本保存的分区数组
// 数据不存在时 ok 为 false；存在但不是对象数组时返回错误
func (m *Manager) sectionArray() (sections []gjson.Result, ok bool, err error) {
	data, err := m.store.Data(defaults.KeySections)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, false, ErrMalformedSections
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, false, &InvalidSectionsError{Object: root.Value()}
	}
	sections = root.Array()
	for _, s := range sections {
		if !s.IsObject() {
			return nil, false, &InvalidSectionsError{Object: root.Value()}
		}
	}
	return sections, true, nil
}

// findSection 返回第一个 name 等于给定旧名称的分区
func findSection(sections []gjson.Result, name string) (gjson.Result, bool) {
	for _, s := range sections {
		n := s.Get("name")
		if n.Type == gjson.String && n.Str == name {
			return s, true
		}
	}
	return gjson.Result{}, false
}

// intValue 仅接受整数
func intValue(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number || r.Num != math.Trunc(r.Num) {
		return 0, false
	}
	return int(r.Num), true
}

// intMapping 要求 r 是全部字段都为整数的对象
func intMapping(r gjson.Result) (map[string]int, bool) {
	if !r.IsObject() {
		return nil, false
	}
	fields := make(map[string]int)
	ok := true
	r.ForEach(func(k, v gjson.Result) bool {
		n, isInt := intValue(v)
		if !isInt {
			ok = false
			return false
		}
		fields[k.Str] = n
		return true
	})
	return fields, ok
}

// decodeObject 解码 JSON 对象，数字保留为 json.Number 以免重新编码时丢失精度
func decodeObject(raw string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to decode menu bar section: %w", err)
	}
	return obj, nil
}

func (m *Manager) writeSections(sections []any) error {
	data, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to encode menu bar sections: %w", err)
	}
	return m.store.SetData(defaults.KeySections, data)
}
