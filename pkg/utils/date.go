package utils

import (
	"fmt"
	"time"
)

// ParseDate aceita YYYY-MM-DD (meia-noite no fuso informado) ou RFC3339.
// Quando endOfRange é verdadeiro, uma data sem hora inclui o dia inteiro: retorna a meia-noite seguinte.
func ParseDate(value string, location *time.Location, endOfRange bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if location == nil {
		location = time.UTC
	}

	if date, err := time.ParseInLocation(time.DateOnly, value, location); err == nil {
		if endOfRange {
			date = date.AddDate(0, 0, 1)
		}
		return &date, nil
	}

	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: use YYYY-MM-DD ou RFC3339", value)
	}

	date = date.In(location)
	return &date, nil
}
