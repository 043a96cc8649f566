package record

import (
	"fmt"
	"strings"
)

// Validate は追記される値を列定義に照らして検証し、正規化した値を返します。
// 空の任意項目は空文字列のまま返され、保存時に NULL になります。
func Validate(table Table, values []string) ([]string, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("%q: %w", string(table), ErrUnknownTable)
	}

	columns := tableDefs[table].columns
	if len(values) != len(columns) {
		return nil, invalid(table, "", fmt.Errorf("got %d values for %d columns: %w", len(values), len(columns), ErrFieldCount))
	}

	out := make([]string, len(values))
	for i, col := range columns {
		normalized, err := normalizeValue(col, values[i])
		if err != nil {
			return nil, invalid(table, col.Name, err)
		}
		out[i] = normalized
	}
	return out, nil
}

func normalizeValue(col Column, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if col.Required {
			return "", ErrRequired
		}
		if col.Kind == KindBool {
			return FormatBool(false), nil
		}
		return "", nil
	}

	switch col.Kind {
	case KindDate:
		t, err := ParseDate(trimmed)
		if err != nil {
			return "", err
		}
		return FormatDate(t), nil
	case KindTime:
		t, err := ParseTimeOfDay(trimmed)
		if err != nil {
			return "", err
		}
		return t.Format(TimeLayout), nil
	case KindDecimal:
		v, err := ParseAmount(trimmed)
		if err != nil {
			return "", err
		}
		if col.Positive && v <= 0 {
			return "", fmt.Errorf("must be greater than zero: %w", ErrInvalidAmount)
		}
		if v < 0 {
			return "", fmt.Errorf("must not be negative: %w", ErrInvalidAmount)
		}
		return FormatAmount(v), nil
	case KindBool:
		b, err := ParseBool(trimmed)
		if err != nil {
			return "", err
		}
		return FormatBool(b), nil
	case KindEnum:
		for _, allowed := range col.Enum {
			if strings.EqualFold(allowed, trimmed) {
				return allowed, nil
			}
		}
		return "", fmt.Errorf("%q: %w", trimmed, ErrInvalidEnum)
	default:
		return trimmed, nil
	}
}
