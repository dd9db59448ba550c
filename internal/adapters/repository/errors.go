package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrConnect     = errors.New("database connect failed")
	ErrQueryFailed = errors.New("database query failed")
	ErrScanFailed  = errors.New("row scan failed")
)
