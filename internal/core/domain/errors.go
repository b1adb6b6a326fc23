package domain

import "errors"

// Ошибки, которые use case'ы возвращают наружу.
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrConflict         = errors.New("unique constraint violated")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrEmptyAggregationDomain - ни у одной заявки нет суммы, минимум не определен.
	ErrEmptyAggregationDomain = errors.New("no request has an amount")
)
