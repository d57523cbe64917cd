package rednoise

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShortFirstBlock is returned when the source cannot fill the DC bin
	// and the first analysis block. No noise estimate exists in that case.
	ErrShortFirstBlock = errors.New("rednoise: source too short for first block")

	// ErrDegenerateLevel is returned when a block noise level or an
	// interpolated local level is zero, negative or not finite.
	ErrDegenerateLevel = errors.New("rednoise: degenerate noise level")

	errCountMismatch = errors.New("rednoise: emitted bin count differs from consumed count")
)

func validateConfig(cfg Config) error {
	if cfg.StartWidth < 1 {
		return fmt.Errorf("rednoise start width must be >= 1: %d", cfg.StartWidth)
	}
	if cfg.EndWidth < cfg.StartWidth {
		return fmt.Errorf("rednoise end width must be >= start width: %d < %d", cfg.EndWidth, cfg.StartWidth)
	}
	if !(cfg.EndFreq > 0) || math.IsInf(cfg.EndFreq, 0) {
		return fmt.Errorf("rednoise end frequency must be > 0 and finite: %f", cfg.EndFreq)
	}
	return nil
}

func validateDuration(duration float64) error {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("rednoise duration must be > 0 and finite: %f", duration)
	}
	return nil
}

func checkLevel(level float64) error {
	if !(level > 0) || math.IsInf(level, 0) {
		return fmt.Errorf("%w: %g", ErrDegenerateLevel, level)
	}
	return nil
}
