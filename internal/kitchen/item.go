package kitchen

import (
	"fmt"

	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// Kind is the variant of an item.
type Kind int

const (
	KindIngredient Kind = iota
	KindPlate
	KindTool
)

func (k Kind) String() string {
	switch k {
	case KindIngredient:
		return "ingredient"
	case KindPlate:
		return "plate"
	case KindTool:
		return "tool"
	default:
		return "unknown"
	}
}

// PlateType is the type name of every plate.
const PlateType = "plate"

// Processing states. The set is open; recipe content may use others.
const (
	StateDefault = "default"
	StateChopped = "chopped"
	StateCooked  = "cooked"
	StateBurnt   = "burnt"
)

// Point is a tile position in the kitchen.
type Point struct {
	X, Y int
}

// Item is a placeable or holdable object. Items placed on it are referenced
// by handle in Slots; slot 0 is the primary placed item.
type Item struct {
	Kind     Kind
	Type     string
	State    string
	Pos      Point
	Rotation float64
	Size     float64
	Timer    float64
	Slots    [2]Handle

	combine  bool
	remove   bool
	serving  bool
	produced Handle
}

// Placed returns the primary placed item handle.
func (it Item) Placed() Handle {
	return it.Slots[0]
}

// Full reports whether both slots are occupied.
func (it Item) Full() bool {
	return it.Slots[0].Valid() && it.Slots[1].Valid()
}

// Flags reports the pending per-tick intents of the item.
func (it Item) Flags() (combine, remove, serving bool) {
	return it.combine, it.remove, it.serving
}

func (it Item) String() string {
	return fmt.Sprintf("%s(%s/%s)", it.Kind, it.Type, it.State)
}

// placeRule decides whether an item of type typ may go on carrier.
type placeRule func(k *Kitchen, carrier *Item, typ string) bool

type kindBehavior struct {
	pickup bool
	place  placeRule
}

var behaviors = map[Kind]kindBehavior{
	KindIngredient: {pickup: true, place: func(*Kitchen, *Item, string) bool { return false }},
	KindPlate:      {pickup: true, place: plateAccepts},
	KindTool:       {pickup: false, place: toolAccepts},
}

// plateAccepts takes any non-plate when empty, otherwise only a different
// type that combines with what is already there.
func plateAccepts(k *Kitchen, plate *Item, typ string) bool {
	if typ == PlateType || plate.Full() {
		return false
	}
	placed, ok := k.items.get(plate.Placed())
	if !ok {
		return true
	}
	return k.combinable(placed.Type, typ)
}

// toolAccepts takes one item at a time, and only types with an edge labelled
// by the tool's own type.
func toolAccepts(k *Kitchen, tool *Item, typ string) bool {
	if tool.Placed().Valid() {
		return false
	}
	return k.graph.Accepts(typ, tool.Type)
}

func (k *Kitchen) combinable(current, incoming string) bool {
	if current == incoming {
		return false
	}
	_, ok := k.graph.CommonNode(current, incoming)
	return ok
}

// NewItem creates an item and registers it as live.
func (k *Kitchen) NewItem(kind Kind, typ string) Handle {
	h := k.newItem(kind, typ)
	k.live = append(k.live, h)
	return h
}

// newItem stores an item without registering it as live.
func (k *Kitchen) newItem(kind Kind, typ string) Handle {
	size := k.rules.DefaultSize
	if kind == KindTool {
		size = k.rules.ToolSize
	}
	if kind == KindPlate {
		typ = PlateType
	}
	return k.items.insert(&Item{Kind: kind, Type: typ, State: StateDefault, Size: size})
}

// Item returns a copy of the item behind h.
func (k *Kitchen) Item(h Handle) (Item, bool) {
	it, ok := k.items.get(h)
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Exists reports whether h refers to a stored item.
func (k *Kitchen) Exists(h Handle) bool {
	_, ok := k.items.get(h)
	return ok
}

// AddItem places child on carrier: slot 0 if empty, else slot 1.
// A third placement returns ErrSlotsFull and changes nothing.
func (k *Kitchen) AddItem(carrier, child Handle) error {
	c, ok := k.items.get(carrier)
	if !ok {
		return ErrStaleHandle
	}
	ch, ok := k.items.get(child)
	if !ok {
		return ErrStaleHandle
	}
	if err := addToSlots(&c.Slots, child); err != nil {
		return fmt.Errorf("kitchen: add %s to %s: %w", ch.Type, c.Type, err)
	}
	ch.Pos = c.Pos
	ch.Rotation = c.Rotation
	return nil
}

func addToSlots(slots *[2]Handle, h Handle) error {
	switch {
	case !slots[0].Valid():
		slots[0] = h
	case !slots[1].Valid():
		slots[1] = h
	default:
		return ErrSlotsFull
	}
	return nil
}

// ClearItems forgets the placed items without removing them.
// Used when ownership moves elsewhere, for example to the player's hands.
func (k *Kitchen) ClearItems(h Handle) {
	if it, ok := k.items.get(h); ok {
		it.Slots = [2]Handle{}
	}
}

// CanPickup reports whether the item can be lifted by a player.
func (k *Kitchen) CanPickup(h Handle) bool {
	it, ok := k.items.get(h)
	if !ok {
		return false
	}
	return behaviors[it.Kind].pickup
}

// CanPlace reports whether an item of type typ may be placed on h.
func (k *Kitchen) CanPlace(h Handle, typ string) bool {
	it, ok := k.items.get(h)
	if !ok {
		return false
	}
	return behaviors[it.Kind].place(k, it, typ)
}

// CanChop reports whether an ingredient can be processed on a chopping board.
func (k *Kitchen) CanChop(h Handle) bool {
	return k.ingredientAccepts(h, recipe.InputChop)
}

// CanFry reports whether an ingredient can be processed on a frying pan.
func (k *Kitchen) CanFry(h Handle) bool {
	return k.ingredientAccepts(h, recipe.InputFry)
}

// CanBoil reports whether an ingredient can be processed in a saucepan.
func (k *Kitchen) CanBoil(h Handle) bool {
	return k.ingredientAccepts(h, recipe.InputBoil)
}

// CanServe reports whether an ingredient has a serve edge.
func (k *Kitchen) CanServe(h Handle) bool {
	return k.ingredientAccepts(h, recipe.InputServe)
}

// CanServeSuccessfully reports whether a servable ingredient matches one of
// the ordered dishes.
func (k *Kitchen) CanServeSuccessfully(h Handle, ordered []string) bool {
	if !k.CanServe(h) {
		return false
	}
	it, _ := k.items.get(h)
	for _, d := range ordered {
		if d == it.Type {
			return true
		}
	}
	return false
}

func (k *Kitchen) ingredientAccepts(h Handle, input string) bool {
	it, ok := k.items.get(h)
	if !ok || it.Kind != KindIngredient {
		return false
	}
	return k.graph.Accepts(it.Type, input)
}

// CombineItems merges the two items on h when the recipe graph has a common
// destination for them. It returns the new item, which stays unregistered
// until the combine intent is resolved.
func (k *Kitchen) CombineItems(h Handle) (Handle, bool) {
	it, ok := k.items.get(h)
	if !ok {
		return Handle{}, false
	}
	produced, ok := k.combineSlots(&it.Slots)
	if !ok {
		return Handle{}, false
	}
	it.combine = true
	it.produced = produced
	k.place(produced, it.Pos)
	return produced, true
}

// combineSlots replaces two combinable occupants with their combination.
func (k *Kitchen) combineSlots(slots *[2]Handle) (Handle, bool) {
	a, okA := k.items.get(slots[0])
	b, okB := k.items.get(slots[1])
	if !okA || !okB {
		return Handle{}, false
	}
	combined, ok := k.graph.CommonNode(a.Type, b.Type)
	if !ok {
		return Handle{}, false
	}

	k.RemoveItems(slots[0], true, true)
	k.RemoveItems(slots[1], true, true)
	*slots = [2]Handle{}

	produced := k.newItem(KindIngredient, combined)
	if it, ok := k.items.get(produced); ok {
		it.Size = k.rules.CombinedSize
	}
	slots[0] = produced
	return produced, true
}

func (k *Kitchen) place(h Handle, pos Point) {
	if it, ok := k.items.get(h); ok {
		it.Pos = pos
	}
}

// RemoveItems flags h for removal when removeSelf is set, and recursively
// flags and detaches everything placed on it when removePlaced is set.
// Nothing is destroyed until the remove intent is resolved.
func (k *Kitchen) RemoveItems(h Handle, removeSelf, removePlaced bool) {
	it, ok := k.items.get(h)
	if !ok {
		return
	}
	if removeSelf {
		it.remove = true
	}
	if removePlaced {
		for _, child := range it.Slots {
			k.RemoveItems(child, true, true)
		}
		it.Slots = [2]Handle{}
	}
}

// MarkServing flags a carrier as delivered. The dish is the carrier's
// primary placed item.
func (k *Kitchen) MarkServing(h Handle, at Point) error {
	it, ok := k.items.get(h)
	if !ok {
		return ErrStaleHandle
	}
	it.serving = true
	it.Pos = at
	return nil
}

// ResetTimer zeroes the cooking timer of h.
func (k *Kitchen) ResetTimer(h Handle) {
	if it, ok := k.items.get(h); ok {
		it.Timer = 0
	}
}

// SetPos moves h and everything stacked on it.
func (k *Kitchen) SetPos(h Handle, pos Point, rotation float64) {
	it, ok := k.items.get(h)
	if !ok {
		return
	}
	it.Pos = pos
	it.Rotation = rotation
	for _, child := range it.Slots {
		k.SetPos(child, pos, rotation)
	}
}
