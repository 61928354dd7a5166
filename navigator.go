package main

// Navigator is a cursor over the change groups of one comparison.
// The zero value is an empty navigator.
type Navigator struct {
	changeIndex []int
	current     int
}

// Reset replaces the change positions and moves back to the first group.
// Called whenever either document of the comparison changes.
func (n *Navigator) Reset(changeIndex []int) {
	n.changeIndex = append([]int(nil), changeIndex...)
	n.current = 0
}

// Total returns the number of change groups
func (n *Navigator) Total() int {
	return len(n.changeIndex)
}

// Current returns the current group index and the inline line it starts on.
// ok is false when there are no changes.
func (n *Navigator) Current() (index, line int, ok bool) {
	if len(n.changeIndex) == 0 {
		return 0, 0, false
	}
	return n.current, n.changeIndex[n.current], true
}

// GoTo moves to group index and returns the inline line it starts on.
// Out-of-range indexes leave the cursor untouched.
func (n *Navigator) GoTo(index int) (line int, ok bool) {
	if index < 0 || index >= len(n.changeIndex) {
		return 0, false
	}
	n.current = index
	return n.changeIndex[index], true
}

// Next moves to the following group, wrapping to the first after the last
func (n *Navigator) Next() (line int, ok bool) {
	total := len(n.changeIndex)
	if total == 0 {
		return 0, false
	}
	return n.GoTo((n.current + 1) % total)
}

// Previous moves to the preceding group, wrapping to the last before the first
func (n *Navigator) Previous() (line int, ok bool) {
	total := len(n.changeIndex)
	if total == 0 {
		return 0, false
	}
	if n.current == 0 {
		return n.GoTo(total - 1)
	}
	return n.GoTo(n.current - 1)
}
