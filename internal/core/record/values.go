package record

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	timeLayoutSeconds = "15:04:05"
)

// ParseDate は YYYY-MM-DD 形式の日付を UTC の 0 時として解釈します。
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate は日付を YYYY-MM-DD 形式にします。ゼロ値は空文字列です。
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseTimeOfDay は HH:MM または HH:MM:SS 形式の時刻を解釈します。
func ParseTimeOfDay(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if t, err := time.Parse(TimeLayout, trimmed); err == nil {
		return t, nil
	}
	t, err := time.Parse(timeLayoutSeconds, trimmed)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}

// ParseAmount は金額を解釈します。小数点にカンマも使用できます。
// 受け付けるのは符号と数字と小数点だけの表記で、指数や 16 進表記は拒否します。
func ParseAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	if !strings.Contains(trimmed, ".") && strings.Count(trimmed, ",") == 1 {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}
	if !isPlainDecimal(trimmed) {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// FormatAmount は金額を最短表現の文字列にします。
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseBool は true/false または 1/0 を解釈します。
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, ErrInvalidBool
	}
}

// FormatBool は真偽値を保存形式にします。
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
