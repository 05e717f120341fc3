package types

import "fmt"

type Mode string

const (
	ModeDryRun    Mode = "dry_run"
	ModeMerge     Mode = "merge"
	ModeOverwrite Mode = "overwrite"
)

// ParseMode rejects anything outside the three known modes. Matching is
// exact.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (want dry_run, merge or overwrite)", ErrInvalidMode, s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	switch m {
	case ModeDryRun, ModeMerge, ModeOverwrite:
		return true
	}
	return false
}

// Writes reports whether the mode touches storage.
func (m Mode) Writes() bool { return m == ModeMerge || m == ModeOverwrite }
