package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotForPairForRoundTrip(t *testing.T) {
	for k := 1; k <= MaxColors; k++ {
		for hi := 0; hi < k; hi++ {
			for lo := 0; lo <= hi; lo++ {
				slot, err := SlotFor(lo, hi)
				require.NoError(t, err, "SlotFor(%d,%d) k=%d", lo, hi, k)

				gotLo, gotHi, err := PairFor(slot, k)
				require.NoError(t, err, "PairFor(%d) k=%d", slot, k)
				assert.Equal(t, lo, gotLo, "lo round trip for slot %d", slot)
				assert.Equal(t, hi, gotHi, "hi round trip for slot %d", slot)
			}
		}
	}
}

func TestSlotForInjective(t *testing.T) {
	for k := 1; k <= MaxColors; k++ {
		seen := make(map[Slot]bool)
		maxSlot := Slot(0)
		for hi := 0; hi < k; hi++ {
			for lo := 0; lo <= hi; lo++ {
				slot, err := SlotFor(lo, hi)
				require.NoError(t, err)
				assert.False(t, seen[slot], "slot %d assigned twice (k=%d)", slot, k)
				seen[slot] = true
				if slot > maxSlot {
					maxSlot = slot
				}
			}
		}
		assert.Equal(t, Slot(SlotCount(k)), maxSlot, "max slot for k=%d", k)
	}
}

func TestSlotCapacityInvariant(t *testing.T) {
	// 22 colors use 253 of the 255 native pairs; 23 would overflow.
	assert.Equal(t, 253, SlotCount(MaxColors))
	assert.LessOrEqual(t, SlotCount(MaxColors), MaxSlots)
	assert.Greater(t, SlotCount(MaxColors+1), MaxSlots)
}

func TestSlotForContiguousRuns(t *testing.T) {
	// Pairs sharing a hi occupy hi+1 consecutive slots.
	for hi := 0; hi < MaxColors; hi++ {
		first, err := SlotFor(0, hi)
		require.NoError(t, err)
		last, err := SlotFor(hi, hi)
		require.NoError(t, err)
		assert.Equal(t, Slot(hi), last-first, "run length for hi=%d", hi)
	}
}

func TestSlotForRejectsInvalidPairs(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"negative lo", -1, 3},
		{"lo above hi", 4, 2},
		{"hi at palette limit", 0, MaxColors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SlotFor(tt.lo, tt.hi)
			assert.ErrorIs(t, err, ErrSlotOutOfRange)
		})
	}
}

func TestPairForRejectsInvalidSlots(t *testing.T) {
	tests := []struct {
		name string
		slot Slot
		k    int
	}{
		{"reserved slot zero", 0, 4},
		{"beyond palette capacity", Slot(SlotCount(4) + 1), 4},
		{"negative slot", -1, 4},
		{"zero palette", 1, 0},
		{"oversized palette", 1, MaxColors + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := PairFor(tt.slot, tt.k)
			assert.ErrorIs(t, err, ErrSlotOutOfRange)
		})
	}
}
