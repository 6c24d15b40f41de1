package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb 列的通用编解码，各个切片类型只是薄封装

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonbScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}

	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", src)
	}
}

// StringList 存储在 jsonb 列中的字符串数组（商品图片、页面权限等）
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonbValue(l)
}

func (l *StringList) Scan(src interface{}) error {
	return jsonbScan(l, src)
}

// Contains 判断列表是否包含指定项
func (l StringList) Contains(item string) bool {
	for _, v := range l {
		if v == item {
			return true
		}
	}
	return false
}
