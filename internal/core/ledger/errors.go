package ledger

import "errors"

var (
	ErrStoreUnavailable = errors.New("ledger: store unavailable")
	ErrExportDisabled   = errors.New("ledger: export is not configured")
)
