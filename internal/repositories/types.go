package repositories

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

// stringList maps a []string onto a JSONB column.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("stringList: unsupported type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

func toMillis(t time.Time) models.Millis {
	return models.MillisFromTime(t)
}

func toNullMillis(t sql.NullTime) *models.Millis {
	if !t.Valid {
		return nil
	}
	m := models.MillisFromTime(t.Time)
	return &m
}

func toNullTime(m *models.Millis) sql.NullTime {
	if m == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: m.Time(), Valid: true}
}

func toNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func rawOrZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
