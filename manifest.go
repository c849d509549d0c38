package vercmp

// Manifest configures how version strings are parsed. The zero value (and
// a nil *Manifest) parses every part of the input.
type Manifest struct {
	// MaxDepth caps the number of parts a parsed version may have.
	// Zero means no limit.
	MaxDepth int

	// IgnoreText drops text parts from the parsed version, keeping only
	// the numeric parts.
	IgnoreText bool
}

// HasMaxDepth reports whether the manifest caps the number of parts.
func (m *Manifest) HasMaxDepth() bool {
	return m != nil && m.MaxDepth > 0
}
