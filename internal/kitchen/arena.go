package kitchen

// Handle refers to an item stored in the kitchen arena.
// The zero Handle refers to nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was issued by an arena. A valid handle may still
// be stale if its item has since been removed.
func (h Handle) Valid() bool {
	return h.gen != 0
}

type arenaSlot struct {
	gen  uint32
	item *Item
}

// arena is a generational slot map. Removing an item bumps the slot's
// generation so old handles stop resolving.
type arena struct {
	slots []arenaSlot
	free  []uint32
	count int
}

func (a *arena) insert(it *Item) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot{})
	}
	s := &a.slots[idx]
	s.gen++
	s.item = it
	a.count++
	return Handle{index: idx, gen: s.gen}
}

func (a *arena) get(h Handle) (*Item, bool) {
	if !h.Valid() || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.item == nil {
		return nil, false
	}
	return s.item, true
}

func (a *arena) remove(h Handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	s.item = nil
	s.gen++
	a.free = append(a.free, h.index)
	a.count--
	return true
}

func (a *arena) len() int {
	return a.count
}

// each calls fn for every stored item in slot order.
func (a *arena) each(fn func(Handle, *Item)) {
	for i, s := range a.slots {
		if s.item != nil {
			fn(Handle{index: uint32(i), gen: s.gen}, s.item)
		}
	}
}
