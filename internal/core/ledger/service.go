package ledger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ogurasousui/gymledger/internal/core/dashboard"
	"github.com/ogurasousui/gymledger/internal/core/record"
	"github.com/ogurasousui/gymledger/internal/core/search"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Exporter は行集合をファイル形式へ書き出します。
type Exporter interface {
	Export(w io.Writer, table record.Table, rows []record.Row) error
}

// UseCase は台帳ユースケースの公開インターフェースです。
type UseCase interface {
	AppendRow(ctx context.Context, table record.Table, values []string) (int64, error)
	AddEmployee(ctx context.Context, in record.Employee) (int64, error)
	AddSupplier(ctx context.Context, in record.Supplier) (int64, error)
	AddTransaction(ctx context.Context, in record.Transaction) (int64, error)
	AddAppointment(ctx context.Context, in record.Appointment) (int64, error)
	AddTodo(ctx context.Context, in record.Todo) (int64, error)
	ReadAll(ctx context.Context, table record.Table) ([]record.Row, error)
	Search(ctx context.Context, in SearchInput) ([]record.Row, error)
	Dashboard(ctx context.Context) (*dashboard.Summary, error)
	LocationBreakdown(ctx context.Context) ([]dashboard.LocationTotal, error)
	ExportTable(ctx context.Context, in ExportInput) ([]byte, error)
}

// SearchInput は検索時の入力です。Columns が空の場合はテーブルの既定列を使います。
type SearchInput struct {
	Table   record.Table
	Query   string
	Columns []string
}

// ExportInput はエクスポート時の入力です。
type ExportInput struct {
	Table   record.Table
	Query   string
	Columns []string
}

// DashboardOptions はダッシュボード集計の設定です。
type DashboardOptions struct {
	Location             *time.Location
	TodoWindowDays       int
	UpcomingAppointments int
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithExporter はエクスポータを設定します。
func WithExporter(e Exporter) Option {
	return func(s *Service) { s.exporter = e }
}

// WithDashboardOptions はダッシュボード集計の設定を行います。
func WithDashboardOptions(opts DashboardOptions) Option {
	return func(s *Service) { s.dashboard = opts }
}

// Service は台帳に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	clock     Clock
	tx        TransactionManager
	exporter  Exporter
	dashboard DashboardOptions
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, opts ...Option) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{repo: repo, clock: clock, tx: tx}
	for _, opt := range opts {
		opt(s)
	}
	if s.dashboard.Location == nil {
		s.dashboard.Location = time.UTC
	}
	return s
}

// AppendRow は値を検証してから行を追加します。
func (s *Service) AppendRow(ctx context.Context, table record.Table, values []string) (int64, error) {
	normalized, err := record.Validate(table, values)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		created, err := s.repo.AppendRow(txCtx, table, normalized)
		if err != nil {
			return err
		}
		id = created
		return nil
	}); err != nil {
		return 0, err
	}

	return id, nil
}

// AddEmployee は社員を登録します。
func (s *Service) AddEmployee(ctx context.Context, in record.Employee) (int64, error) {
	return s.AppendRow(ctx, record.TableEmployees, in.Values())
}

// AddSupplier は仕入先を登録します。
func (s *Service) AddSupplier(ctx context.Context, in record.Supplier) (int64, error) {
	return s.AppendRow(ctx, record.TableSuppliers, in.Values())
}

// AddTransaction は会計取引を登録します。
func (s *Service) AddTransaction(ctx context.Context, in record.Transaction) (int64, error) {
	return s.AppendRow(ctx, record.TableTransactions, in.Values())
}

// AddAppointment は予定を登録します。
func (s *Service) AddAppointment(ctx context.Context, in record.Appointment) (int64, error) {
	return s.AppendRow(ctx, record.TableAppointments, in.Values())
}

// AddTodo は ToDo を登録します。
func (s *Service) AddTodo(ctx context.Context, in record.Todo) (int64, error) {
	return s.AppendRow(ctx, record.TableTodos, in.Values())
}

// ReadAll はテーブルの全行を取得します。
func (s *Service) ReadAll(ctx context.Context, table record.Table) ([]record.Row, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}

	var rows []record.Row
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.ReadAll(txCtx, table)
		if err != nil {
			return err
		}
		rows = found
		return nil
	}); err != nil {
		return nil, err
	}

	return rows, nil
}

// Search はテーブルの行を部分一致で絞り込みます。
func (s *Service) Search(ctx context.Context, in SearchInput) ([]record.Row, error) {
	columns, err := searchColumns(in.Table, in.Columns)
	if err != nil {
		return nil, err
	}

	rows, err := s.ReadAll(ctx, in.Table)
	if err != nil {
		return nil, err
	}

	return search.FilterBySubstring(rows, columns, in.Query), nil
}

// Dashboard はダッシュボードの集計値を算出します。
func (s *Service) Dashboard(ctx context.Context) (*dashboard.Summary, error) {
	var in dashboard.Input
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		targets := []struct {
			table record.Table
			dest  *[]record.Row
		}{
			{record.TableEmployees, &in.Employees},
			{record.TableTransactions, &in.Transactions},
			{record.TableAppointments, &in.Appointments},
			{record.TableTodos, &in.Todos},
		}
		for _, target := range targets {
			rows, err := s.repo.ReadAll(txCtx, target.table)
			if err != nil {
				return err
			}
			*target.dest = rows
		}
		return nil
	}); err != nil {
		return nil, err
	}

	summary := dashboard.Compute(in, dashboard.Options{
		Today:                s.today(),
		TodoWindowDays:       s.dashboard.TodoWindowDays,
		UpcomingAppointments: s.dashboard.UpcomingAppointments,
	})
	return &summary, nil
}

// LocationBreakdown は拠点別・種別別の取引合計を返します。
func (s *Service) LocationBreakdown(ctx context.Context) ([]dashboard.LocationTotal, error) {
	rows, err := s.ReadAll(ctx, record.TableTransactions)
	if err != nil {
		return nil, err
	}
	return dashboard.LocationBreakdown(rows), nil
}

// ExportTable は検索結果をエクスポータの形式で返します。
func (s *Service) ExportTable(ctx context.Context, in ExportInput) ([]byte, error) {
	if s.exporter == nil {
		return nil, ErrExportDisabled
	}

	rows, err := s.Search(ctx, SearchInput{Table: in.Table, Query: in.Query, Columns: in.Columns})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.exporter.Export(&buf, in.Table, rows); err != nil {
		return nil, fmt.Errorf("ledger: export %s: %w", in.Table, err)
	}
	return buf.Bytes(), nil
}

func (s *Service) today() time.Time {
	now := s.clock.Now().In(s.dashboard.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func searchColumns(table record.Table, requested []string) ([]string, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("%q: %w", string(table), record.ErrUnknownTable)
	}
	if len(requested) == 0 {
		return table.SearchColumns(), nil
	}

	columns := make([]string, 0, len(requested))
	for _, raw := range requested {
		name := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := table.Column(name); !ok {
			return nil, &record.ValidationError{Table: table, Column: name, Err: record.ErrUnknownColumn}
		}
		columns = append(columns, name)
	}
	return columns, nil
}
