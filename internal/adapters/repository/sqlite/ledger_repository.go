// Package sqlite は SQLite ファイルを利用した台帳リポジトリです。
package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/core/record"
	sqlitedb "github.com/ogurasousui/gymledger/internal/platform/db/sqlite"
)

type statements struct {
	columns []record.Column
	insert  string
	selectQ string
}

// LedgerRepository は SQLite を利用した ledger.Repository の実装です。
type LedgerRepository struct {
	db    sqlitedb.Queryer
	stmts map[record.Table]statements
}

// NewLedgerRepository は LedgerRepository を生成します。
func NewLedgerRepository(db sqlitedb.Queryer) *LedgerRepository {
	stmts := make(map[record.Table]statements, len(record.Tables()))
	for _, table := range record.Tables() {
		stmts[table] = buildStatements(table)
	}
	return &LedgerRepository{db: db, stmts: stmts}
}

func buildStatements(table record.Table) statements {
	columns := table.Columns()
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c.Name)
		placeholders[i] = "?"
	}
	list := strings.Join(quoted, ", ")
	name := quoteIdent(table.String())

	return statements{
		columns: columns,
		insert:  fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, name, list, strings.Join(placeholders, ", ")),
		selectQ: fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id`, list, name),
	}
}

// AppendRow は行を追加し採番された ID を返します。
func (r *LedgerRepository) AppendRow(ctx context.Context, table record.Table, values []string) (int64, error) {
	st, ok := r.stmts[table]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}
	if len(values) != len(st.columns) {
		return 0, &record.ValidationError{Table: table, Err: record.ErrFieldCount}
	}

	args := make([]any, len(values))
	for i, c := range st.columns {
		arg, err := toArg(c, values[i])
		if err != nil {
			return 0, &record.ValidationError{Table: table, Column: c.Name, Err: err}
		}
		args[i] = arg
	}

	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, st.insert, args...)
	if err != nil {
		return 0, translateError("append "+table.String(), err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, translateError("append "+table.String(), err)
	}
	return id, nil
}

// ReadAll はテーブルの全行を ID 昇順で返します。
func (r *LedgerRepository) ReadAll(ctx context.Context, table record.Table) ([]record.Row, error) {
	st, ok := r.stmts[table]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}

	exec := sqlitedb.QueryerFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, st.selectQ)
	if err != nil {
		return nil, translateError("read "+table.String(), err)
	}
	defer rows.Close()

	result := make([]record.Row, 0)
	for rows.Next() {
		var id int64
		raw := make([]any, len(st.columns))
		dest := make([]any, len(st.columns)+1)
		dest[0] = &id
		for i := range raw {
			dest[i+1] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, translateError("scan "+table.String(), err)
		}

		values := make(map[string]string, len(st.columns))
		for i, c := range st.columns {
			if v, ok := fromColumn(c, raw[i]); ok {
				values[c.Name] = v
			}
		}
		result = append(result, record.Row{ID: id, Values: values})
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("read "+table.String(), err)
	}
	return result, nil
}

func toArg(c record.Column, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	switch c.Kind {
	case record.KindDecimal:
		f, err := record.ParseAmount(value)
		if err != nil {
			return nil, err
		}
		return f, nil
	case record.KindBool:
		b, err := record.ParseBool(value)
		if err != nil {
			return nil, err
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return value, nil
	}
}

// fromColumn は SQLite の動的型の値を列の種類に応じた文字列表現に戻します。
func fromColumn(c record.Column, v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case int64:
		if c.Kind == record.KindBool {
			return record.FormatBool(val != 0), true
		}
		if c.Kind == record.KindDecimal {
			return record.FormatAmount(float64(val)), true
		}
		return strconv.FormatInt(val, 10), true
	case float64:
		return record.FormatAmount(val), true
	case []byte:
		return string(val), true
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}

func translateError(op string, err error) error {
	if sqlitedb.IsUnavailable(err) {
		return fmt.Errorf("sqlite: %s: %w: %w", op, ledger.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("sqlite: %s: %w", op, err)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ ledger.Repository = (*LedgerRepository)(nil)
