package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Форматы, в которых клиенты присылают add_time
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateTime — время добавления заявки. Принимает как ISO-формат,
// так и формат с пробелом ("2021-09-22 13:18:13")
type DateTime struct {
	time.Time
}

// UnmarshalJSON разбирает строку времени по списку поддерживаемых форматов
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("некорректный формат add_time: %q", s)
}

// MarshalJSON возвращает время в ISO-формате без зоны
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format("2006-01-02T15:04:05"))
}
