// Package idseq provides a local, monotonic identifier generator: an
// explicit, locally-owned counter rather than a global "ID wallet"
// singleton. It generalizes a simple index→string ID scheme into a small
// stateful sequence, since road-segment splitting needs IDs handed out
// incrementally rather than derived from a fixed index.
package idseq

import "strconv"

// Seq is a monotonic counter that renders IDs with a fixed prefix, e.g.
// Seq{prefix: "r"}.Next() → "r0", "r1", "r2", ...
type Seq struct {
	prefix string
	next   int
}

// New returns a Seq that yields prefix+"0", prefix+"1", ...
func New(prefix string) *Seq {
	return &Seq{prefix: prefix}
}

// Next returns the next identifier and advances the sequence.
func (s *Seq) Next() string {
	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}
