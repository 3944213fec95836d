package models

import "errors"

var ErrNonPositiveAmount = errors.New("transaction amount must be positive")
