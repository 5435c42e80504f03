// SPDX-License-Identifier: MIT

package pivot

import "errors"

// ErrUnknownStrategy is returned when a Strategy value is outside the closed set
// {None, AbsMax, AbsMaxSwap} or a name cannot be parsed.
var ErrUnknownStrategy = errors.New("pivot: unknown strategy")

// ErrNilDimension is returned by New when no dimension is supplied.
var ErrNilDimension = errors.New("pivot: nil dimension")
