package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list-valued field persisted as a JSON array in a text column.
// The round trip is exact: an empty list serializes to "[]", never to NULL, and
// scanning "[]" (or NULL, for rows written before the column existed) yields an
// empty, non-nil list.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize string list: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse string list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

// GormDataType keeps the column as plain text across dialects.
func (StringList) GormDataType() string {
	return "text"
}
