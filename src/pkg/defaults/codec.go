package defaults

import (
	"encoding/json"
	"fmt"
)

// 存储内部的命名空间
const (
	namespaceFlag       = "flag"
	namespaceData       = "data"
	namespaceStatusItem = "status_item"
)

func encodeBool(value bool) []byte {
	if value {
		return []byte("true")
	}
	return []byte("false")
}

func decodeBool(raw []byte) (bool, error) {
	switch string(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", raw)
}

// encodeScoped 以 JSON 编码作用域条目的值
func encodeScoped(value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoped value: %w", err)
	}
	return b, nil
}

func decodeScoped(raw []byte) (any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to decode scoped value: %w", err)
	}
	return value, nil
}
