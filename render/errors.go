package render

import "errors"

// Sentinel errors for the render core. None of these are transient; callers
// treat slot and bounds violations as programming errors and do not retry.
var (
	// ErrPaletteTooLarge is returned when a palette exceeds MaxColors entries,
	// which would overflow the 255 native color-pair slots.
	ErrPaletteTooLarge = errors.New("render: palette exceeds maximum of 22 colors")

	// ErrDimensionMismatch is returned when an input field is empty in either
	// dimension or has ragged rows.
	ErrDimensionMismatch = errors.New("render: invalid field dimensions")

	// ErrSlotOutOfRange is returned when a slot or color index lookup falls
	// outside the range valid for the palette size.
	ErrSlotOutOfRange = errors.New("render: slot out of range")

	// ErrOutOfBounds is returned when a draw position falls outside the
	// surface frame buffer.
	ErrOutOfBounds = errors.New("render: position out of bounds")

	// ErrSlotExhausted is returned when native color-pair capacity would be
	// exceeded. This indicates palette bookkeeping and terminal capacity
	// disagree and must never be silently truncated.
	ErrSlotExhausted = errors.New("render: native color pair capacity exhausted")
)
