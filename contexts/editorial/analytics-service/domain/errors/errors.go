package errors

import "errors"

var ErrInvalidPeriod = errors.New("period must be month, quarter, half_year or year")
