package provider

import (
	"strings"

	"github.com/donaldgifford/javamatrix/internal/installer"
)

// Matcher reports whether a classification input (usually a filename) matches.
type Matcher func(s string) bool

// Contains matches when s contains any of the markers.
func Contains(markers ...string) Matcher {
	return func(s string) bool {
		for _, m := range markers {
			if strings.Contains(s, m) {
				return true
			}
		}

		return false
	}
}

// HasSuffix matches when s ends with suffix.
func HasSuffix(suffix string) Matcher {
	return func(s string) bool {
		return strings.HasSuffix(s, suffix)
	}
}

// EqualFold matches when s equals any of the values, ignoring case.
func EqualFold(values ...string) Matcher {
	return func(s string) bool {
		for _, v := range values {
			if strings.EqualFold(s, v) {
				return true
			}
		}

		return false
	}
}

// AllOf matches when every matcher matches.
func AllOf(matchers ...Matcher) Matcher {
	return func(s string) bool {
		for _, m := range matchers {
			if !m(s) {
				return false
			}
		}

		return true
	}
}

// Not inverts a matcher.
func Not(m Matcher) Matcher {
	return func(s string) bool {
		return !m(s)
	}
}

// Rule maps a matching input to a canonical value, or marks it out of scope.
type Rule struct {
	// Value is the canonical vocabulary value. Empty when Skip is set.
	Value string
	// Skip drops the record from the catalog instead of classifying it.
	Skip bool
	// Reason explains a skip in debug logs.
	Reason string
	// Match decides whether the rule applies.
	Match Matcher
}

// Classify returns a rule that maps matching inputs to value.
func Classify(value string, m Matcher) Rule {
	return Rule{Value: value, Match: m}
}

// SkipWhen returns a rule that drops matching inputs.
func SkipWhen(reason string, m Matcher) Rule {
	return Rule{Skip: true, Reason: reason, Match: m}
}

// Table is an ordered list of rules; the first match wins.
type Table []Rule

// Lookup returns the first rule matching s.
func (t Table) Lookup(s string) (Rule, bool) {
	for _, r := range t {
		if r.Match(s) {
			return r, true
		}
	}

	return Rule{}, false
}

// InstallerTypeTable is the suffix table shared by every provider.
var InstallerTypeTable = Table{
	Classify(installer.InstallerTarGz, HasSuffix(".tar.gz")),
	Classify(installer.InstallerMSI, HasSuffix(".msi")),
	Classify(installer.InstallerZip, HasSuffix(".zip")),
	Classify(installer.InstallerDMG, HasSuffix(".dmg")),
	Classify(installer.InstallerDeb, HasSuffix(".deb")),
	Classify(installer.InstallerRPM, HasSuffix(".rpm")),
	Classify(installer.InstallerAPK, HasSuffix(".apk")),
	Classify(installer.InstallerPkg, HasSuffix(".pkg")),
}
