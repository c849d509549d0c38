package vercmp

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
)

// The tolerant ordering is not semver, but on well-formed semver input the
// two agree except where semver ranks numeric prerelease identifiers below
// alphanumeric ones and where build metadata is involved. Every version
// below stays inside the agreement subset; the pairwise orderings produced
// by this package and by Masterminds semver must be identical over it.
var semverAgreementSet = []string{
	"0.1.0",
	"1",
	"1.2",
	"1.0.0",
	"1.2.3",
	"1.2.4",
	"1.9.0",
	"1.10.0",
	"2.0.0",
	"10.20.30",
	"1.2.3-alpha",
	"1.2.3-alpha.1",
	"1.2.3-alpha.2",
	"1.2.3-beta",
	"1.2.3-beta.2",
	"1.2.3-beta.11",
	"1.2.3-rc.1",
}

func TestSemverConformance(t *testing.T) {
	for _, a := range semverAgreementSet {
		for _, b := range semverAgreementSet {
			sa, err := semver.NewVersion(a)
			require.NoError(t, err, "semver rejects %q", a)
			sb, err := semver.NewVersion(b)
			require.NoError(t, err, "semver rejects %q", b)

			want := sa.Compare(sb)
			got := Compare(a, b)
			require.Equal(t, want, got,
				"Compare(%q, %q) = %d, semver says %d", a, b, got, want)
		}
	}
}
