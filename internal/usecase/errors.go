package usecase

import "errors"

var ErrInvalidDateRange = errors.New("end date must not be after start date")
