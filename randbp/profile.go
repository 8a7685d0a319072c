package randbp

import (
	"encoding"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Profile selects which generator algorithm to instantiate.
//
// The zero value is WellBalanced.
type Profile int

// Profile values.
const (
	// WellBalanced is a good default for mixed integer and float64 use.
	WellBalanced Profile = iota

	// FastestInt32 is backed by the 64-bit Mersenne Twister (mt64).
	FastestInt32

	// FastestDouble is backed by the double precision oriented generator
	// (fastdouble).
	FastestDouble

	// Compatible is backed by MT19937 (mt19937).
	// Seeded with the same value, it produces the reference MT19937 sequence.
	Compatible
)

var profileNames = [...]string{
	WellBalanced:  "well-balanced",
	FastestInt32:  "fastest-int32",
	FastestDouble: "fastest-double",
	Compatible:    "compatible",
}

var (
	_ fmt.Stringer             = Profile(0)
	_ encoding.TextMarshaler   = Profile(0)
	_ encoding.TextUnmarshaler = (*Profile)(nil)
	_ yaml.Unmarshaler         = (*Profile)(nil)
)

// Profiles returns all the known profiles.
func Profiles() []Profile {
	return []Profile{WellBalanced, FastestInt32, FastestDouble, Compatible}
}

func (p Profile) String() string {
	if p.Validate() != nil {
		return fmt.Sprintf("Profile(%d)", int(p))
	}
	return profileNames[p]
}

// Validate returns an error wrapping ErrInvalidArgument if p is not one of the
// known profiles.
func (p Profile) Validate() error {
	if p < 0 || int(p) >= len(profileNames) {
		return fmt.Errorf("randbp: unknown profile %d: %w", int(p), ErrInvalidArgument)
	}
	return nil
}

// ParseProfile parses the name of a profile.
//
// Names are case insensitive, and dashes and underscores are ignored,
// so "fastest-int32", "FastestInt32" and "FASTEST_INT32" are all FastestInt32.
func ParseProfile(s string) (Profile, error) {
	want := normalizeProfileName(s)
	for _, p := range Profiles() {
		if normalizeProfileName(profileNames[p]) == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("randbp: unknown profile %q: %w", s, ErrInvalidArgument)
}

func normalizeProfileName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Profile) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(profileNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Profile) UnmarshalText(text []byte) error {
	parsed, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Profile) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
