package wallpack

import "github.com/Nic0Byte/wall-build-1-sub002/wallgeom"

// validateStatic checks everything about in that does not require
// building any geometry: widths, height, and strategy/reinforcement
// consistency. It is the first stage of PackWall, run before any
// polygon work begins (spec.md §7).
// Complexity: O(1).
func validateStatic(in Input) error {
	if err := validateWidths(in.Widths); err != nil {
		return err
	}
	if in.Height <= 0 {
		return ErrNonPositiveHeight
	}

	return validateStrategy(in)
}

// validateWidths requires three distinct positive integers.
func validateWidths(widths [3]int64) error {
	if widths[0] <= 0 || widths[1] <= 0 || widths[2] <= 0 {
		return ErrWidthsNotDistinctPositive
	}
	if widths[0] == widths[1] || widths[1] == widths[2] || widths[0] == widths[2] {
		return ErrWidthsNotDistinctPositive
	}

	return nil
}

// validateStrategy checks the strategy ↔ reinforcement pairing: small
// requires a present and internally valid reinforcement config; big
// ignores one if present.
func validateStrategy(in Input) error {
	switch in.Strategy {
	case StrategyBig:
		return nil
	case StrategySmall:
		if in.Reinforcement == nil {
			return ErrMissingReinforcement
		}
		if err := in.Reinforcement.Validate(); err != nil {
			return ErrInvalidReinforcement
		}

		return nil
	default:
		return ErrUnknownStrategy
	}
}

// validateExterior requires the sanitized exterior to carry non-
// negligible area; this is the one geometry-dependent config check that
// can run immediately after sanitize, before any band/row computation.
func validateExterior(p wallgeom.Polygon) error {
	if p.IsEmpty() {
		return ErrEmptyExterior
	}

	return nil
}

// validateVerticalBand requires the offset-adjusted band to still have
// positive height (spec.md §7: "ground+ceiling ≥ H_avail" is a
// configuration error, not a warning).
func validateVerticalBand(hAvail int64) error {
	if hAvail <= 0 {
		return ErrVerticalBandExhausted
	}

	return nil
}
