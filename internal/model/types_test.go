package model

import (
	"errors"
	"testing"
)

func TestParseUsageTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, err := ParseUsageTier(" " + tier.String() + " ")
		if err != nil || got != tier {
			t.Fatalf("parse %s: got %v, %v", tier, got, err)
		}
	}
	if _, err := ParseUsageTier("legendary"); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected unknown tier, got %v", err)
	}
	if _, err := UsageTier(9).MarshalText(); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected marshal error for invalid tier, got %v", err)
	}
}

func TestParseDeprecation(t *testing.T) {
	cases := map[string]Deprecation{
		"in-use":     InUseOnly,
		"Deprecated": DeprecatedOnly,
		"any":        AnyDeprecation,
	}
	for name, want := range cases {
		got, err := ParseDeprecation(name)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %v, %v", name, got, err)
		}
	}
	if _, err := ParseDeprecation("maybe"); !errors.Is(err, ErrUnknownDeprecation) {
		t.Fatalf("expected unknown deprecation, got %v", err)
	}
}

func TestDeprecationAllows(t *testing.T) {
	if !InUseOnly.Allows(false) || InUseOnly.Allows(true) {
		t.Fatalf("in-use filter mismatch")
	}
	if DeprecatedOnly.Allows(false) || !DeprecatedOnly.Allows(true) {
		t.Fatalf("deprecated filter mismatch")
	}
	if !AnyDeprecation.Allows(false) || !AnyDeprecation.Allows(true) {
		t.Fatalf("any filter mismatch")
	}
}

func TestCriteriaAllowsTier(t *testing.T) {
	var zero Criteria
	for _, tier := range Tiers() {
		if zero.AllowsTier(tier) {
			t.Fatalf("zero criteria admitted %s", tier)
		}
	}
	c := Criteria{Uncommon: true}
	if !c.AllowsTier(TierUncommon) || c.AllowsTier(TierCore) {
		t.Fatalf("unexpected tier admission")
	}
}
