package types

import "errors"

// Erros de validação de entrada: rejeitados antes de qualquer trabalho numérico.
var (
	ErrInvalidTariff              = errors.New("tariff must be a positive amount per kWh")
	ErrNegativeBalance            = errors.New("balance cannot be negative")
	ErrHistoryTooShort            = errors.New("usage history must contain at least two samples")
	ErrNonMonotonicDays           = errors.New("historical day indices must be strictly increasing")
	ErrNegativeUsage              = errors.New("historical usage cannot be negative")
	ErrInvalidHorizon             = errors.New("forecast horizon must be a positive number of days")
	ErrInvalidReductionBounds     = errors.New("reduction bounds must satisfy 0 <= min < max < 1")
	ErrNegativeDayIndex           = errors.New("historical day indices cannot be negative")
	ErrInvalidInterpolationWindow = errors.New("interpolation window must be 0 (whole history) or at least 2 days")
	ErrNoHistoryConfigured        = errors.New("no usage history found; provide samples via the config file")
)
