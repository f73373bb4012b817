package kociemba

import (
	"github.com/SeamusWaldron/kociemba/internal/cubie"
	"github.com/SeamusWaldron/kociemba/internal/facelet"
	"github.com/SeamusWaldron/kociemba/internal/solver"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// Sentinel errors for the kociemba package. Errors returned by the API
// wrap one of these and carry detail in the message; match with
// errors.Is.
var (
	// Facelet string errors
	ErrInvalidLength  = facelet.ErrInvalidLength
	ErrInvalidFacelet = facelet.ErrInvalidFacelet

	// Cube state errors. ErrVerification wraps one of the specific
	// reasons below.
	ErrVerification      = cubie.ErrVerification
	ErrEdgesNotUnique    = cubie.ErrEdgesNotUnique
	ErrCornersNotUnique  = cubie.ErrCornersNotUnique
	ErrEdgeOrientation   = cubie.ErrEdgeOrientation
	ErrCornerOrientation = cubie.ErrCornerOrientation
	ErrParityMismatch    = cubie.ErrParityMismatch

	// Notation errors
	ErrInvalidNotation = cubie.ErrInvalidNotation

	// Search errors
	ErrTimeout = solver.ErrTimeout

	// Table persistence errors
	ErrTablesInvalidData = tables.ErrInvalidData
	ErrTablesLoadFailed  = tables.ErrLoadFailed
	ErrTablesSaveFailed  = tables.ErrSaveFailed
)
