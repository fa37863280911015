package sheet

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("no rows matched")
	ErrEmptyData     = errors.New("data is empty")
	ErrInvalidData   = errors.New("invalid row data")
	ErrInvalidColumn = errors.New("invalid column name")
	ErrInvalidSheet  = errors.New("invalid sheet name")
)
