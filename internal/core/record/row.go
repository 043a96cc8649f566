package record

// Row はテーブルの 1 行です。Values に存在しない列は NULL を表します。
type Row struct {
	ID     int64
	Values map[string]string
}

// NewRow は値のコピーを保持する Row を生成します。
func NewRow(id int64, values map[string]string) Row {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Row{ID: id, Values: copied}
}

// Get は列の値を返します。NULL の場合 ok は false です。
func (r Row) Get(column string) (string, bool) {
	if r.Values == nil {
		return "", false
	}
	v, ok := r.Values[column]
	return v, ok
}

// Value は列の値を返します。NULL は空文字列になります。
func (r Row) Value(column string) string {
	v, _ := r.Get(column)
	return v
}
