// SPDX-License-Identifier: MIT

package lr

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDimension is returned when a Matrix is constructed without a dimension.
	ErrNilDimension = errors.New("lr: nil dimension")

	// ErrNonSquare is returned when row data handed to a constructor is not n×n.
	ErrNonSquare = errors.New("lr: matrix is not square")

	// ErrDimensionMismatch reports a vector whose length differs from the matrix size.
	ErrDimensionMismatch = errors.New("lr: dimension mismatch")

	// ErrNotFactored reports an operation that needs the packed factors before Factorize ran.
	ErrNotFactored = errors.New("lr: matrix is not factored")

	// ErrNonFinite reports NaN or ±Inf in the factorization or in a computed result.
	// The usual cause is a zero (singular) pivot.
	ErrNonFinite = errors.New("lr: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opNew                = "New"
	opNewFromRows        = "NewFromRows"
	opNewLike            = "NewLike"
	opFromGonum          = "FromGonum"
	opSolve              = "Solve"
	opMultiply           = "Multiply"
	opDeterminant        = "Determinant"
	opInverseDeterminant = "InverseDeterminant"
	opSignedDeterminant  = "SignedDeterminant"
	opCheckFinite        = "CheckFinite"
)

// lrErrorf wraps err with an operation tag; errors.Is still matches the sentinel.
// Only call with a non-nil err.
func lrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
