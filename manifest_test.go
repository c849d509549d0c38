package vercmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestHasMaxDepth(t *testing.T) {
	var nilManifest *Manifest
	assert.False(t, nilManifest.HasMaxDepth())
	assert.False(t, (&Manifest{}).HasMaxDepth())
	assert.True(t, (&Manifest{MaxDepth: 1}).HasMaxDepth())
	assert.True(t, (&Manifest{MaxDepth: 3}).HasMaxDepth())
}

func TestParseWithManifestMaxDepth(t *testing.T) {
	v := ParseWithManifest("1.2.3.4", &Manifest{MaxDepth: 2})
	assert.Equal(t, 2, v.PartCount())
	assert.Equal(t, 0, v.Compare(Parse("1.2")))

	// Zero depth means no limit.
	v = ParseWithManifest("1.2.3.4", &Manifest{})
	assert.Equal(t, 4, v.PartCount())
}

func TestParseWithManifestIgnoreText(t *testing.T) {
	v := ParseWithManifest("1.alpha.2", &Manifest{IgnoreText: true})
	assert.Equal(t, 2, v.PartCount())
	assert.Equal(t, 0, v.Compare(Parse("1.2")))

	// Depth is counted over the kept parts.
	v = ParseWithManifest("1.alpha.2.3", &Manifest{MaxDepth: 2, IgnoreText: true})
	assert.Equal(t, 2, v.PartCount())
	assert.Equal(t, 0, v.Compare(Parse("1.2")))
}

func TestParseWithManifestNil(t *testing.T) {
	v := ParseWithManifest("1.2.alpha", nil)
	assert.Equal(t, 3, v.PartCount())
	assert.Equal(t, 0, v.Compare(Parse("1.2.alpha")))
}
