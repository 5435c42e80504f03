// SPDX-License-Identifier: MIT

package pivot

import (
	"fmt"
	"strings"
)

// Strategy is the closed set of pivoting behaviors.
type Strategy int

const (
	// None performs no pivoting.
	None Strategy = iota
	// AbsMax pivots by largest magnitude through an indirection table.
	AbsMax
	// AbsMaxSwap pivots by largest magnitude and physically swaps buffer rows.
	AbsMaxSwap
)

// String returns the canonical name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case AbsMax:
		return "absmax"
	case AbsMaxSwap:
		return "absmax-swap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Validate returns ErrUnknownStrategy for values outside the closed set.
func (s Strategy) Validate() error {
	switch s {
	case None, AbsMax, AbsMaxSwap:
		return nil
	default:
		return fmt.Errorf("%v: %w", s, ErrUnknownStrategy)
	}
}

// ParseStrategy maps a textual name to a Strategy (case-insensitive).
// Accepted: "none", "absmax", "absmax-indirection", "absmax-swap".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return None, nil
	case "absmax", "absmax-indirection":
		return AbsMax, nil
	case "absmax-swap":
		return AbsMaxSwap, nil
	default:
		return None, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Set implements flag.Value so a Strategy can be bound to a command-line flag.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v

	return nil
}
