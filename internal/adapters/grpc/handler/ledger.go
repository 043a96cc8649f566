package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ogurasousui/gymledger/internal/core/dashboard"
	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/core/record"
	"github.com/ogurasousui/gymledger/internal/platform/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LedgerGrpcHandler は LedgerService の gRPC 実装です。
type LedgerGrpcHandler struct {
	svc ledger.UseCase
	UnimplementedLedgerServiceServer
}

// NewLedgerGrpcHandler は LedgerGrpcHandler を生成します。
func NewLedgerGrpcHandler(svc ledger.UseCase) *LedgerGrpcHandler {
	return &LedgerGrpcHandler{svc: svc}
}

// AppendRow は行を追加します。values は列順の配列、または列名をキーとするオブジェクトです。
func (h *LedgerGrpcHandler) AppendRow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	table, err := tableField(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	values, err := rowValues(table, req.GetFields()["values"])
	if err != nil {
		return nil, toStatusError(err)
	}

	id, err := h.svc.AppendRow(ctx, table, values)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("table", table.String()).Msg("append rejected")
		return nil, toStatusError(err)
	}
	logging.FromContext(ctx).Info().Str("table", table.String()).Int64("id", id).Msg("row appended")

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id": structpb.NewNumberValue(float64(id)),
	}}, nil
}

// ReadAll はテーブルの全行を返します。
func (h *LedgerGrpcHandler) ReadAll(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	table, err := record.ParseTable(req.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}

	rows, err := h.svc.ReadAll(ctx, table)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoRows(table, rows), nil
}

// Search は部分一致で絞り込んだ行を返します。
func (h *LedgerGrpcHandler) Search(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toSearchInput(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	rows, err := h.svc.Search(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoRows(in.Table, rows), nil
}

// Dashboard はダッシュボードの集計値を返します。
func (h *LedgerGrpcHandler) Dashboard(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	summary, err := h.svc.Dashboard(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"employee_count":        structpb.NewNumberValue(float64(summary.EmployeeCount)),
		"pending_invoices":      structpb.NewNumberValue(float64(summary.PendingInvoices)),
		"current_balance":       structpb.NewNumberValue(summary.CurrentBalance),
		"upcoming_appointments": structpb.NewListValue(toProtoRows(record.TableAppointments, summary.UpcomingAppointments)),
		"due_todos":             structpb.NewListValue(toProtoRows(record.TableTodos, summary.DueTodos)),
		"locations":             structpb.NewListValue(toProtoLocations(summary.Locations)),
	}}, nil
}

// LocationBreakdown は拠点別・種別別の合計を返します。
func (h *LedgerGrpcHandler) LocationBreakdown(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	totals, err := h.svc.LocationBreakdown(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoLocations(totals), nil
}

// ExportTable は検索結果を .xlsx のバイト列で返します。
func (h *LedgerGrpcHandler) ExportTable(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toSearchInput(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	data, err := h.svc.ExportTable(ctx, ledger.ExportInput{Table: in.Table, Query: in.Query, Columns: in.Columns})
	if err != nil {
		return nil, toStatusError(err)
	}
	return wrapperspb.Bytes(data), nil
}

func tableField(req *structpb.Struct) (record.Table, error) {
	return record.ParseTable(req.GetFields()["table"].GetStringValue())
}

func toSearchInput(req *structpb.Struct) (ledger.SearchInput, error) {
	table, err := tableField(req)
	if err != nil {
		return ledger.SearchInput{}, err
	}

	in := ledger.SearchInput{
		Table: table,
		Query: req.GetFields()["query"].GetStringValue(),
	}
	for _, v := range req.GetFields()["columns"].GetListValue().GetValues() {
		in.Columns = append(in.Columns, v.GetStringValue())
	}
	return in, nil
}

// rowValues はリクエストの values を列順の文字列に変換します。
func rowValues(table record.Table, v *structpb.Value) ([]string, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_ListValue:
		items := kind.ListValue.GetValues()
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = scalarString(item)
		}
		return out, nil
	case *structpb.Value_StructValue:
		columns := table.ColumnNames()
		out := make([]string, len(columns))
		index := make(map[string]int, len(columns))
		for i, name := range columns {
			index[name] = i
		}
		seen := make([]bool, len(columns))
		for name, item := range kind.StructValue.GetFields() {
			i, ok := index[strings.ToLower(name)]
			if !ok {
				return nil, &record.ValidationError{Table: table, Column: name, Err: record.ErrUnknownColumn}
			}
			if seen[i] {
				return nil, &record.ValidationError{Table: table, Column: columns[i], Err: fmt.Errorf("duplicate column: %w", record.ErrUnknownColumn)}
			}
			seen[i] = true
			out[i] = scalarString(item)
		}
		return out, nil
	case nil:
		return nil, &record.ValidationError{Table: table, Err: record.ErrFieldCount}
	default:
		return nil, &record.ValidationError{Table: table, Err: fmt.Errorf("values must be a list or an object: %w", record.ErrFieldCount)}
	}
}

func scalarString(v *structpb.Value) string {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return record.FormatBool(kind.BoolValue)
	default:
		return ""
	}
}

func toProtoRows(table record.Table, rows []record.Row) *structpb.ListValue {
	columns := table.ColumnNames()
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(rows))}
	for _, row := range rows {
		fields := make(map[string]*structpb.Value, len(columns)+1)
		fields["id"] = structpb.NewNumberValue(float64(row.ID))
		for _, c := range columns {
			if v, ok := row.Get(c); ok {
				fields[c] = structpb.NewStringValue(v)
			} else {
				fields[c] = structpb.NewNullValue()
			}
		}
		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{Fields: fields}))
	}
	return list
}

func toProtoLocations(totals []dashboard.LocationTotal) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(totals))}
	for _, t := range totals {
		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"location": structpb.NewStringValue(string(t.Location)),
			"color":    structpb.NewStringValue(dashboard.LocationColor(t.Location)),
			"type":     structpb.NewStringValue(string(t.Type)),
			"total":    structpb.NewNumberValue(t.Total),
		}}))
	}
	return list
}

var _ LedgerServiceServer = (*LedgerGrpcHandler)(nil)
