package gs1parse

import (
	"fmt"
	"strings"
)

// Mode selects the shape of a Result.
type Mode int

const (
	// ModeSimple maps AI names to values. Later duplicates overwrite
	// earlier ones.
	ModeSimple Mode = iota
	// ModeVerbose lists every element in payload order, duplicates included.
	ModeVerbose
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named s. The empty string is ModeSimple.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return ModeSimple, nil
	case "verbose":
		return ModeVerbose, nil
	default:
		return ModeSimple, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ModeOf returns ModeVerbose when verbose is set and ModeSimple otherwise.
func ModeOf(verbose bool) Mode {
	if verbose {
		return ModeVerbose
	}
	return ModeSimple
}
