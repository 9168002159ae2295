package scenario

import "errors"

var (
	// ErrNoRegions indicates a scenario without a single region.
	ErrNoRegions = errors.New("scenario: at least one region is required")
	// ErrBadQuantity indicates a negative level, need or capacity.
	ErrBadQuantity = errors.New("scenario: level, need and capacity must be non-negative")
	// ErrBadMaxHours indicates an hour ceiling below one.
	ErrBadMaxHours = errors.New("scenario: max_hours must be at least 1")
	// ErrUnknownReference indicates a canal endpoint or route member that
	// names nothing in the scenario.
	ErrUnknownReference = errors.New("scenario: reference to unknown region or canal")
	// ErrAmbiguousCanalName indicates a canal name matching more than one
	// legacy role letter, or two canals claiming the same letter.
	ErrAmbiguousCanalName = errors.New("scenario: ambiguous legacy canal name")
)
