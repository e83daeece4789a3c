// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned when a usage tier name is not recognised.
var ErrUnknownTier = errors.New("unknown usage tier")

// ErrUnknownDeprecation is returned when a deprecation filter name is not recognised.
var ErrUnknownDeprecation = errors.New("unknown deprecation filter")

// UsageTier is the frequency class of a corpus word.
type UsageTier int

// Usage tiers, most frequent first.
const (
	TierCore UsageTier = iota
	TierCommon
	TierUncommon
	TierObscure
	TierSandbox
)

var tierNames = [...]string{"core", "common", "uncommon", "obscure", "sandbox"}

// Tiers lists every usage tier in order.
func Tiers() []UsageTier {
	return []UsageTier{TierCore, TierCommon, TierUncommon, TierObscure, TierSandbox}
}

func (t UsageTier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseUsageTier parses a tier name such as "core".
func ParseUsageTier(s string) (UsageTier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return UsageTier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t UsageTier) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(tierNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(tierNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *UsageTier) UnmarshalText(text []byte) error {
	parsed, err := ParseUsageTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// WordRecord is one immutable corpus entry. Optional fields are nil when absent.
type WordRecord struct {
	ID          string            `toml:"id"`
	Tier        UsageTier         `toml:"usage_category"`
	Word        string            `toml:"word"`
	Deprecated  bool              `toml:"deprecated"`
	KUData      map[string]uint16 `toml:"ku_data"`
	PUVerbatim  map[string]string `toml:"pu_verbatim"`
	Commentary  *string           `toml:"commentary"`
	Definitions *string           `toml:"definitions"`
}

// Definition returns the definition text or "" when absent.
func (r *WordRecord) Definition() string {
	if r.Definitions == nil {
		return ""
	}
	return *r.Definitions
}

// Deprecation selects records by their deprecated flag.
type Deprecation int

const (
	// InUseOnly keeps only non-deprecated records.
	InUseOnly Deprecation = iota
	// DeprecatedOnly keeps only deprecated records.
	DeprecatedOnly
	// AnyDeprecation keeps both.
	AnyDeprecation
)

var deprecationNames = [...]string{"in-use", "deprecated", "any"}

func (d Deprecation) String() string {
	if d < 0 || int(d) >= len(deprecationNames) {
		return fmt.Sprintf("deprecation(%d)", int(d))
	}
	return deprecationNames[d]
}

// ParseDeprecation parses "in-use", "deprecated" or "any".
func ParseDeprecation(s string) (Deprecation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range deprecationNames {
		if n == name {
			return Deprecation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want in-use, deprecated or any)", ErrUnknownDeprecation, s)
}

// Allows reports whether a record with the given deprecated flag passes.
func (d Deprecation) Allows(deprecated bool) bool {
	switch d {
	case InUseOnly:
		return !deprecated
	case DeprecatedOnly:
		return deprecated
	case AnyDeprecation:
		return true
	default:
		return false
	}
}

// Criteria controls which corpus words are sampled into a session.
//
// A tier flag admits records of that tier. A field flag lifts the requirement
// that the field be present; with the flag unset only records carrying the
// field pass. The zero value selects nothing.
type Criteria struct {
	Core     bool
	Common   bool
	Uncommon bool
	Obscure  bool
	Sandbox  bool

	Deprecation Deprecation

	KU          bool
	PU          bool
	Commentary  bool
	Definitions bool

	Size int
}

// AllowsTier reports whether the tier flag for t is set.
func (c Criteria) AllowsTier(t UsageTier) bool {
	switch t {
	case TierCore:
		return c.Core
	case TierCommon:
		return c.Common
	case TierUncommon:
		return c.Uncommon
	case TierObscure:
		return c.Obscure
	case TierSandbox:
		return c.Sandbox
	default:
		return false
	}
}

// Page is the screen the application shows.
type Page int

// Pages.
const (
	PageGame Page = iota
	PageResults
)

func (p Page) String() string {
	switch p {
	case PageGame:
		return "game"
	case PageResults:
		return "results"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// Config defines practice settings.
type Config struct {
	CorpusPath       string
	Criteria         Criteria
	Hints            bool
	FinishOnLastWord bool
}
