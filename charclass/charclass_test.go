package charclass

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIdentifierStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	for _, r := range "azAZ_éλ漢" {
		if !IsIdentifierStart(r) {
			t.Errorf("%q should start an identifier", r)
		}
	}
	for _, r := range "09 .+-{}$\n" {
		if IsIdentifierStart(r) {
			t.Errorf("%q must not start an identifier", r)
		}
	}
}

func TestIdentifierContinue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	for _, r := range "azAZ09_éλ漢" {
		if !IsIdentifierContinue(r) {
			t.Errorf("%q should continue an identifier", r)
		}
	}
	for _, r := range " .+-{}$\n" {
		if IsIdentifierContinue(r) {
			t.Errorf("%q must not continue an identifier", r)
		}
	}
}

func TestContinueIsSuperset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sus.lexer")
	defer teardown()
	for _, ranges := range identStartRanges {
		for r := ranges.lo; r <= ranges.hi; r++ {
			if !IsIdentifierContinue(r) {
				t.Fatalf("start rune %#x missing from the continue set", r)
			}
		}
	}
}
