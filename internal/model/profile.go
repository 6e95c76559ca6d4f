package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultName is the placeholder profile name used until the user sets one.
	DefaultName = "New user"

	MinBirthYear = 1900
)

var ErrInvalidBirthYear = errors.New("model: invalid birth year")

// UserProfile is the single local profile. Exactly one instance exists per
// process; a load replaces it wholesale, never field-by-field. A zero
// BirthYear or empty AvatarPath means unset.
type UserProfile struct {
	Name            string
	Level           int
	Experience      int
	QuestsCompleted int
	AvatarPath      string
	BirthYear       int
}

func DefaultProfile() UserProfile {
	return UserProfile{Name: DefaultName, Level: 1}
}

// ValidateBirthYear checks the 1900..current-year range.
func ValidateBirthYear(year int, now time.Time) error {
	if year < MinBirthYear || year > now.Year() {
		return fmt.Errorf("%w: %d", ErrInvalidBirthYear, year)
	}
	return nil
}

// NormalizedName applies the default placeholder to blank input.
func NormalizedName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}
