package vercmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibraryVersion(t *testing.T) {
	assert.Equal(t, "0.1.0", LibraryVersion)
	assert.Equal(t, 3, Parse(LibraryVersion).PartCount())
}

func TestStandaloneCompare(t *testing.T) {
	assert.Equal(t, -1, Compare("1.2", "1.5.1"))
	assert.Equal(t, 1, Compare("1.5.1", "1.2"))
	assert.Equal(t, 0, Compare("1.2", "1.2.0"))
	assert.Equal(t, 0, Compare("", ""))
	assert.Equal(t, -1, Compare("", "1"))
}

func TestStandaloneCompareTo(t *testing.T) {
	assert.True(t, CompareTo("1.2", "1.5.1", OpLe))
	assert.True(t, CompareTo("1.2", "1.5.1", OpLt))
	assert.False(t, CompareTo("1.2", "1.5.1", OpGt))
	assert.True(t, CompareTo("1.2.3", "1.2.3", OpEq))
	assert.True(t, CompareTo("1", "0.1", OpGe))
}

func TestSort(t *testing.T) {
	versions := []string{"1.10", "0.9", "1.2", "2.0.0-alpha", "1.9", "2"}
	Sort(versions)
	// A trailing text qualifier ranks below its numeric truncation,
	// so "2.0.0-alpha" sorts before "2".
	assert.Equal(t, []string{"0.9", "1.2", "1.9", "1.10", "2.0.0-alpha", "2"}, versions)
}

func TestSortStable(t *testing.T) {
	// Equal versions keep their original relative order.
	versions := []string{"1.2.0", "1.2", "1.2.0.0"}
	Sort(versions)
	assert.Equal(t, []string{"1.2.0", "1.2", "1.2.0.0"}, versions)
}

func TestSortEmpty(t *testing.T) {
	var versions []string
	Sort(versions)
	assert.Empty(t, versions)
}

func TestLatest(t *testing.T) {
	assert.Equal(t, "1.10", Latest("1.2", "1.10", "1.9"))
	assert.Equal(t, "2", Latest("1.2.3.4", "2"))
	assert.Equal(t, "1.2", Latest("1.2", "1.2.0"))
	assert.Equal(t, "", Latest())
}

func TestOldest(t *testing.T) {
	assert.Equal(t, "1.2", Oldest("1.2", "1.10", "1.9"))
	assert.Equal(t, "1.2.3.4", Oldest("1.2.3.4", "2"))
	assert.Equal(t, "1.2", Oldest("1.2", "1.2.0"))
	assert.Equal(t, "", Oldest())
}
