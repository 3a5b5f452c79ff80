package kitchen

import "fmt"

// UnitType tags what a counter unit does for the player.
type UnitType string

const (
	UnitDefault  UnitType = "default"
	UnitSource   UnitType = "source"
	UnitBin      UnitType = "bin"
	UnitDelivery UnitType = "delivery"
)

// Edge indices into Unit.Edges.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Unit is a fixed counter station holding up to two items.
type Unit struct {
	Pos      Point
	Width    int
	Type     UnitType
	Source   string // spawned type when Type is UnitSource
	Selected bool
	Edges    [4]bool
	Slots    [2]Handle

	combine  bool
	produced Handle
}

// Placed returns the primary placed item handle.
func (u *Unit) Placed() Handle {
	return u.Slots[0]
}

// Empty reports whether nothing rests on the unit.
func (u *Unit) Empty() bool {
	return !u.Slots[0].Valid() && !u.Slots[1].Valid()
}

// AddUnit appends a counter unit and returns its index.
func (k *Kitchen) AddUnit(pos Point, typ UnitType, source string) int {
	if typ == "" {
		typ = UnitDefault
	}
	k.units = append(k.units, &Unit{Pos: pos, Width: 1, Type: typ, Source: source, Edges: [4]bool{true, true, true, true}})
	return len(k.units) - 1
}

// Unit returns the counter unit at index i.
func (k *Kitchen) Unit(i int) (*Unit, error) {
	if i < 0 || i >= len(k.units) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, i)
	}
	return k.units[i], nil
}

// UnitCount returns the number of counter units.
func (k *Kitchen) UnitCount() int {
	return len(k.units)
}

// UnitAt returns the index of the unit at pos.
func (k *Kitchen) UnitAt(pos Point) (int, bool) {
	for i, u := range k.units {
		if u.Pos == pos {
			return i, true
		}
	}
	return -1, false
}

// Select marks unit i as the only selected unit. A negative index clears
// the selection.
func (k *Kitchen) Select(i int) {
	for j, u := range k.units {
		u.Selected = j == i
	}
}

// Selected returns the index of the selected unit.
func (k *Kitchen) Selected() (int, bool) {
	for i, u := range k.units {
		if u.Selected {
			return i, true
		}
	}
	return -1, false
}

// AddToUnit places h on unit i, slot 0 first.
func (k *Kitchen) AddToUnit(i int, h Handle) error {
	u, err := k.Unit(i)
	if err != nil {
		return err
	}
	it, ok := k.items.get(h)
	if !ok {
		return ErrStaleHandle
	}
	if err := addToSlots(&u.Slots, h); err != nil {
		return fmt.Errorf("kitchen: add %s to unit %d: %w", it.Type, i, err)
	}
	k.SetPos(h, u.Pos, 0)
	return nil
}

// UnitCanPlace mirrors the plate rule for items resting on the unit itself.
// An empty unit takes anything, plates included; an occupied one only a
// different type that combines with the primary item.
func (k *Kitchen) UnitCanPlace(i int, typ string) bool {
	u, err := k.Unit(i)
	if err != nil || u.Slots[1].Valid() {
		return false
	}
	placed, ok := k.items.get(u.Placed())
	if !ok {
		return true
	}
	return k.combinable(placed.Type, typ)
}

// CombineUnit merges the two items on unit i when they combine.
func (k *Kitchen) CombineUnit(i int) (Handle, bool) {
	u, err := k.Unit(i)
	if err != nil {
		return Handle{}, false
	}
	produced, ok := k.combineSlots(&u.Slots)
	if !ok {
		return Handle{}, false
	}
	u.combine = true
	u.produced = produced
	k.place(produced, u.Pos)
	return produced, true
}

// ClearUnit forgets the items on unit i without removing them.
func (k *Kitchen) ClearUnit(i int) {
	if u, err := k.Unit(i); err == nil {
		u.Slots = [2]Handle{}
	}
}

// RefillSources puts a fresh item on every empty source unit and returns
// the spawned handles. Plate sources spawn plates.
func (k *Kitchen) RefillSources() []Handle {
	var spawned []Handle
	for i, u := range k.units {
		k.pruneSlots(&u.Slots)
		if u.Type != UnitSource || !u.Empty() {
			continue
		}
		kind := KindIngredient
		if u.Source == PlateType {
			kind = KindPlate
		}
		h := k.NewItem(kind, u.Source)
		if err := k.AddToUnit(i, h); err != nil {
			k.destroy(h)
			continue
		}
		spawned = append(spawned, h)
	}
	return spawned
}

// pruneSlots drops handles to items that no longer exist, keeping slot 0
// primary.
func (k *Kitchen) pruneSlots(slots *[2]Handle) {
	for i, h := range slots {
		if h.Valid() && !k.Exists(h) {
			slots[i] = Handle{}
		}
	}
	if !slots[0].Valid() && slots[1].Valid() {
		slots[0], slots[1] = slots[1], Handle{}
	}
}
