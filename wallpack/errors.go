package wallpack

import "errors"

// Configuration-error sentinels (spec.md §7): apart from ctx.Err() when
// the context is done at a row boundary, these are the only errors
// PackWall returns. Every other anomaly is a diag.Warning on an
// otherwise successful Result.
var (
	ErrWidthsNotDistinctPositive = errors.New("wallpack: widths must be three distinct positive integers")
	ErrNonPositiveHeight         = errors.New("wallpack: height must be positive")
	ErrEmptyExterior             = errors.New("wallpack: exterior polygon is empty or below the area epsilon")
	ErrVerticalBandExhausted     = errors.New("wallpack: ground+ceiling offsets leave no usable band height")
	ErrMissingReinforcement      = errors.New("wallpack: strategy=small requires a reinforcement configuration")
	ErrInvalidReinforcement      = errors.New("wallpack: reinforcement configuration is invalid")
	ErrUnknownStrategy           = errors.New("wallpack: strategy must be StrategyBig or StrategySmall")
)
