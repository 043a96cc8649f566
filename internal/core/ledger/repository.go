package ledger

import (
	"context"

	"github.com/ogurasousui/gymledger/internal/core/record"
)

// Repository は行の永続化の抽象です。行は追記のみで更新・削除はありません。
type Repository interface {
	// AppendRow は列順に並んだ値で行を追加し、採番された ID を返します。
	AppendRow(ctx context.Context, table record.Table, values []string) (int64, error)
	// ReadAll はテーブルの全行を挿入順で返します。
	ReadAll(ctx context.Context, table record.Table) ([]record.Row, error)
}
