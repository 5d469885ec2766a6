package jtdinfer

import "errors"

// Sentinel errors returned at the CLI/driver boundary. The inference core
// itself never returns an error: it is total, with Any as the universal
// fallback for every case a mismatch could otherwise surface as.
var (
	ErrInvalidJSON   = errors.New("invalid json")
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)
