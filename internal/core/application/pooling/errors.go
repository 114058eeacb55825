package pooling

import "errors"

var (
	ErrDepositNotSupported = errors.New("custody does not support deposits")
	ErrZeroDepositAmount   = errors.New("deposit amount must be greater than 0")
)
