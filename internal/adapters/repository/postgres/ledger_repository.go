package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/core/record"
	pgdb "github.com/ogurasousui/gymledger/internal/platform/db/postgres"
)

const (
	checkViolationCode   = "23514"
	notNullViolationCode = "23502"
)

type statements struct {
	columns []record.Column
	insert  string
	selectQ string
}

// LedgerRepository は PostgreSQL を利用した ledger.Repository の実装です。
type LedgerRepository struct {
	pool  pgdb.Queryer
	stmts map[record.Table]statements
}

// NewLedgerRepository は LedgerRepository を生成します。
func NewLedgerRepository(pool pgdb.Queryer) *LedgerRepository {
	stmts := make(map[record.Table]statements, len(record.Tables()))
	for _, table := range record.Tables() {
		stmts[table] = buildStatements(table)
	}
	return &LedgerRepository{pool: pool, stmts: stmts}
}

// buildStatements は列定義から INSERT と SELECT を組み立てます。
// 値はすべて text として渡し、列の型へのキャストはサーバー側で行います。
func buildStatements(table record.Table) statements {
	columns := table.Columns()
	names := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	selects := make([]string, len(columns))
	for i, c := range columns {
		ident := quoteIdent(c.Name)
		names[i] = ident
		placeholders[i] = fmt.Sprintf("$%d::text%s", i+1, castFor(c.Kind))
		selects[i] = selectExpr(c.Kind, ident)
	}
	name := quoteIdent(table.String())

	return statements{
		columns: columns,
		insert: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
			name, strings.Join(names, ", "), strings.Join(placeholders, ", ")),
		selectQ: fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id`, strings.Join(selects, ", "), name),
	}
}

func castFor(kind record.Kind) string {
	switch kind {
	case record.KindDate:
		return "::date"
	case record.KindTime:
		return "::time"
	case record.KindDecimal:
		return "::numeric"
	case record.KindBool:
		return "::boolean"
	default:
		return ""
	}
}

func selectExpr(kind record.Kind, ident string) string {
	switch kind {
	case record.KindDate:
		return fmt.Sprintf(`to_char(%s, 'YYYY-MM-DD')`, ident)
	case record.KindTime:
		return fmt.Sprintf(`to_char(%s, 'HH24:MI')`, ident)
	case record.KindDecimal, record.KindBool:
		return ident + "::text"
	default:
		return ident
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
	for i, v := range values {
		if v == "" {
			args[i] = nil
			continue
		}
		args[i] = v
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var id int64
	if err := exec.QueryRow(ctx, st.insert, args...).Scan(&id); err != nil {
		return 0, translateLedgerPgError(table, "append", err)
	}
	return id, nil
}

// ReadAll はテーブルの全行を ID 昇順で返します。
func (r *LedgerRepository) ReadAll(ctx context.Context, table record.Table) ([]record.Row, error) {
	st, ok := r.stmts[table]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, st.selectQ)
	if err != nil {
		return nil, translateLedgerPgError(table, "read", err)
	}
	defer rows.Close()

	result := make([]record.Row, 0)
	for rows.Next() {
		var id int64
		raw := make([]sql.NullString, len(st.columns))
		dest := make([]any, len(st.columns)+1)
		dest[0] = &id
		for i := range raw {
			dest[i+1] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, translateLedgerPgError(table, "scan", err)
		}

		values := make(map[string]string, len(st.columns))
		for i, c := range st.columns {
			if !raw[i].Valid {
				continue
			}
			values[c.Name] = normalizeRead(c.Kind, raw[i].String)
		}
		result = append(result, record.Row{ID: id, Values: values})
	}

	if err := rows.Err(); err != nil {
		return nil, translateLedgerPgError(table, "read", err)
	}
	return result, nil
}

// normalizeRead は NUMERIC の表記揺れ ("100.00" など) を書き込み時と同じ表記に揃えます。
func normalizeRead(kind record.Kind, v string) string {
	if kind != record.KindDecimal {
		return v
	}
	f, err := record.ParseAmount(v)
	if err != nil {
		return v
	}
	return record.FormatAmount(f)
}

func translateLedgerPgError(table record.Table, op string, err error) error {
	if err == nil {
		return nil
	}
	if pgdb.IsUnavailable(err) {
		return fmt.Errorf("postgres: %s %s: %w: %w", op, table, ledger.ErrStoreUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode:
			return &record.ValidationError{Table: table, Column: pgErr.ColumnName, Err: record.ErrInvalidAmount}
		case notNullViolationCode:
			return &record.ValidationError{Table: table, Column: pgErr.ColumnName, Err: record.ErrRequired}
		}
	}

	return fmt.Errorf("postgres: %s %s: %w", op, table, err)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ ledger.Repository = (*LedgerRepository)(nil)
