package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/core/record"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, record.ErrValidation),
		errors.Is(err, record.ErrUnknownTable),
		errors.Is(err, record.ErrUnknownColumn):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ledger.ErrExportDisabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
