package model

import (
	"database/sql/driver"
	"fmt"
)

// JSON is a raw JSON document persisted as jsonb. It round-trips through the
// API untouched, so line-item payloads keep whatever shape the client sent.
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("tipo jsonb no soportado: %T", src)
	}
	return nil
}

func (JSON) GormDataType() string { return "jsonb" }

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}
