// Package search は行集合に対する部分一致フィルタを提供します。
package search

import (
	"strings"

	"github.com/ogurasousui/gymledger/internal/core/record"
	"golang.org/x/text/cases"
)

// FilterBySubstring は columns のいずれかに query を含む行だけを返します。
// 大文字小文字は Unicode の case folding で無視します。query が空文字列のときだけ rows をそのまま返し、空白のみの query も通常どおり照合します。
// NULL の列は一致しないものとして扱います。
func FilterBySubstring(rows []record.Row, columns []string, query string) []record.Row {
	if query == "" {
		return rows
	}

	folder := cases.Fold()
	needle := folder.String(query)

	out := make([]record.Row, 0, len(rows))
	for _, row := range rows {
		if matches(folder, row, columns, needle) {
			out = append(out, row)
		}
	}
	return out
}

func matches(folder cases.Caser, row record.Row, columns []string, needle string) bool {
	for _, col := range columns {
		value, ok := row.Get(col)
		if !ok {
			continue
		}
		if strings.Contains(folder.String(value), needle) {
			return true
		}
	}
	return false
}
