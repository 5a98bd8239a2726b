package encoder

import "errors"

var (
	// ErrDimensionMismatch is returned when a row does not have one value per feature slot.
	ErrDimensionMismatch = errors.New("encoder: dimension mismatch")
	// ErrInvalidLabel is returned in strict label mode for labels other than 0 and 1.
	ErrInvalidLabel = errors.New("encoder: invalid label")
	// ErrInvalidParam is returned by constructors for unusable settings.
	ErrInvalidParam = errors.New("encoder: invalid parameter")
)
