package ohday

import "github.com/Telinage2/opening-hours-osm/oherr"

// Bitfield tracks which of a fixed set of positions are selected. It backs
// the nth-weekday-occurrence selector ("Mo[1,3]", "Mo[-1]"): positions
// 0-3 are the 1st through 4th occurrence of a weekday within a month,
// position 4 is "last occurrence". An empty Bitfield (Positions all
// unset, via a default DefaultBitfield) is treated as "every occurrence".
type Bitfield struct {
	bits [5]bool
	any  bool
}

// DefaultBitfield reports every occurrence selected, the implicit meaning
// of a weekday range with no nth_entry suffix.
func DefaultBitfield() Bitfield {
	return Bitfield{any: true}
}

// NewBitfield builds a Bitfield from a set of positions, where 0-3 are
// 1st-4th occurrence and 4 is "last occurrence" (positions are expected
// to already be translated from the parser's 1/2/3/4/-1 surface syntax).
func NewBitfield(positions ...int) (Bitfield, error) {
	var bf Bitfield
	for _, p := range positions {
		if p < 0 || p > 4 {
			return Bitfield{}, oherr.Newf("nth-weekday position out of range: %d", p)
		}
		bf.bits[p] = true
	}
	return bf, nil
}

// Set marks position pos (0-4) as selected.
func (b *Bitfield) Set(pos int) {
	if pos >= 0 && pos < 5 {
		b.bits[pos] = true
	}
}

// Get reports whether position pos is selected.
func (b Bitfield) Get(pos int) bool {
	if b.any {
		return true
	}
	if pos < 0 || pos >= 5 {
		return false
	}
	return b.bits[pos]
}

// Contains reports whether any of the given positions is selected.
func (b Bitfield) Contains(positions ...int) bool {
	for _, p := range positions {
		if b.Get(p) {
			return true
		}
	}
	return false
}

// SetAll marks every position selected (used when the parser sees a bare
// weekday with no nth_entry qualifier).
func (b *Bitfield) SetAll() {
	b.any = true
	for i := range b.bits {
		b.bits[i] = true
	}
}
