package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list-valued text column. Rows written before the JSON
// format was adopted may hold a newline-delimited or plain string; Scan
// normalizes all of them. Value always writes a JSON array.
type StringList []string

// NormalizeStringList turns any historical representation into an ordered list.
func NormalizeStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}
	}

	if strings.HasPrefix(raw, "[") {
		var strs []string
		if err := json.Unmarshal([]byte(raw), &strs); err == nil {
			return compact(strs)
		}
		var mixed []any
		if err := json.Unmarshal([]byte(raw), &mixed); err == nil {
			out := make([]string, 0, len(mixed))
			for _, v := range mixed {
				if v == nil {
					continue
				}
				out = append(out, fmt.Sprint(v))
			}
			return compact(out)
		}
	}

	if strings.HasPrefix(raw, `"`) {
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			return NormalizeStringList(single)
		}
	}

	if strings.ContainsAny(raw, "\r\n") {
		return compact(strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' }))
	}

	return []string{raw}
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = NormalizeStringList(v)
	case []byte:
		*l = NormalizeStringList(string(v))
	default:
		return fmt.Errorf("StringList: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// GormDataType keeps the column a plain text type on every dialect.
func (StringList) GormDataType() string {
	return "text"
}

// UnmarshalJSON accepts either a JSON array or a legacy string from API clients.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = StringList{}
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("StringList: %w", err)
		}
		*l = compact(items)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("StringList: expected array or string: %w", err)
	}
	*l = NormalizeStringList(s)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
