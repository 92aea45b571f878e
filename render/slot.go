package render

// Slot identifies a registered native color pair. Slot 0 is reserved by the
// terminal for its default pair and is never produced by the allocator.
type Slot int

const (
	// MaxSlots is the native color-pair capacity of the target terminals.
	MaxSlots = 255

	// MaxColors is the largest palette size whose unordered color pairs fit
	// in MaxSlots: 22*23/2 = 253 <= 255, while 23*24/2 = 276 overflows.
	MaxColors = 22
)

// SlotCount returns the number of slots consumed by a palette of k colors:
// one slot per unordered pair (lo, hi) with lo <= hi, i.e. k*(k+1)/2.
//
// The glyph choice carries the foreground/background orientation, so only
// unordered pairs ever need slots. That halving is what lets a 22-color
// palette fit the 255-pair budget.
func SlotCount(k int) int {
	return k * (k + 1) / 2
}

// SlotFor maps an unordered palette index pair to its slot.
//
// Pairs are ranked lexicographically by (hi, lo), hi ascending and lo
// ascending within each hi, 1-based. Pairs sharing a hi occupy a contiguous
// run of hi+1 slots, giving the closed form hi*(hi+1)/2 + lo + 1. The
// formula must not change: cached native bindings key on it.
//
// Requires 0 <= lo <= hi <= MaxColors-1.
func SlotFor(lo, hi int) (Slot, error) {
	if lo < 0 || hi < lo || hi >= MaxColors {
		return 0, ErrSlotOutOfRange
	}
	return Slot(hi*(hi+1)/2 + lo + 1), nil
}

// PairFor inverts SlotFor for a palette of k colors. It fails for slot 0,
// slots beyond SlotCount(k), and invalid k.
func PairFor(slot Slot, k int) (lo, hi int, err error) {
	if k < 1 || k > MaxColors {
		return 0, 0, ErrSlotOutOfRange
	}
	if slot < 1 || int(slot) > SlotCount(k) {
		return 0, 0, ErrSlotOutOfRange
	}
	// Largest hi whose run starts at or before slot: runs for hi cover
	// [hi*(hi+1)/2 + 1, hi*(hi+1)/2 + hi + 1].
	rank := int(slot) - 1
	hi = 0
	for (hi+1)*(hi+2)/2 <= rank {
		hi++
	}
	lo = rank - hi*(hi+1)/2
	return lo, hi, nil
}
