package entity

import "ringsnake/game/types"

// DirectionHistory is a fixed-capacity ring of directions, addressed from
// the newest entry backwards. Pushing at capacity overwrites the oldest.
type DirectionHistory struct {
	data []types.Direction
	head int // slot the next push writes to
	size int
}

// NewDirectionHistory allocates a history holding at most capacity entries.
// A capacity below 1 is raised to 1.
func NewDirectionHistory(capacity int) *DirectionHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &DirectionHistory{data: make([]types.Direction, capacity)}
}

func (h *DirectionHistory) Push(d types.Direction) {
	h.data[h.head] = d
	h.head = (h.head + 1) % len(h.data)
	if h.size < len(h.data) {
		h.size++
	}
}

// Pop forgets the oldest entry. Nothing is moved.
func (h *DirectionHistory) Pop() {
	if h.size > 0 {
		h.size--
	}
}

// Top returns the k-th most recent entry, k = 0 being the newest.
// The caller guarantees 0 <= k < Size().
func (h *DirectionHistory) Top(k int) types.Direction {
	n := len(h.data)
	// head < n and k < n keep the sum non-negative
	return h.data[(h.head+n-1-k%n)%n]
}

func (h *DirectionHistory) Size() int {
	return h.size
}

func (h *DirectionHistory) Cap() int {
	return len(h.data)
}
