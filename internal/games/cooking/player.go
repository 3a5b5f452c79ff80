package cooking

import (
	"fmt"

	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// facing is the direction the player looks in. The counter in front of the
// player is the selected one.
type facing int

const (
	faceUp facing = iota
	faceRight
	faceDown
	faceLeft
)

func (f facing) delta() kitchen.Point {
	switch f {
	case faceUp:
		return kitchen.Point{Y: -1}
	case faceRight:
		return kitchen.Point{X: 1}
	case faceDown:
		return kitchen.Point{Y: 1}
	default:
		return kitchen.Point{X: -1}
	}
}

func (f facing) arrow() rune {
	return [...]rune{'▲', '▶', '▼', '◀'}[f]
}

func (f facing) String() string {
	return [...]string{"up", "right", "down", "left"}[f]
}

// player walks the floor tiles and carries at most one item.
type player struct {
	pos    kitchen.Point
	facing facing
	held   kitchen.Handle
}

func (p *player) ahead() kitchen.Point {
	d := p.facing.delta()
	return kitchen.Point{X: p.pos.X + d.X, Y: p.pos.Y + d.Y}
}

// move turns the player and steps onto the next tile when it is floor.
func (p *player) move(f facing, l kitchen.Layout) {
	p.facing = f
	next := p.ahead()
	w, h := l.Size()
	if next.X < 0 || next.Y < 0 || next.X >= w || next.Y >= h {
		return
	}
	if l.IsCounter(next.X, next.Y) {
		return
	}
	p.pos = next
}

// selectFacing selects the counter in front of the player, if any.
func (p *player) selectFacing(k *kitchen.Kitchen) {
	i, ok := k.UnitAt(p.ahead())
	if !ok {
		i = -1
	}
	k.Select(i)
}

// sync drops a held item the resolver destroyed and keeps a live one in
// the player's hands.
func (p *player) sync(k *kitchen.Kitchen) {
	if !p.held.Valid() {
		return
	}
	if !k.Exists(p.held) {
		p.held = kitchen.Handle{}
		return
	}
	k.SetPos(p.held, p.pos, float64(p.facing)*90)
}

// heldItem returns a copy of the carried item.
func (p *player) heldItem(k *kitchen.Kitchen) (kitchen.Item, bool) {
	if !p.held.Valid() {
		return kitchen.Item{}, false
	}
	return k.Item(p.held)
}

// interact is the pick up / place / bin / deliver action on the selected
// counter. It returns a short description of what happened, or "".
func (p *player) interact(k *kitchen.Kitchen) string {
	i, ok := k.Selected()
	if !ok {
		return ""
	}
	u, err := k.Unit(i)
	if err != nil {
		return ""
	}
	placed := u.Placed()
	if !k.Exists(placed) {
		placed = kitchen.Handle{}
	}

	held, holding := p.heldItem(k)
	switch {
	case !holding:
		return p.pickUp(k, i, placed)

	case u.Type == kitchen.UnitBin:
		// A loaded plate is emptied and kept; anything else goes in the bin.
		if held.Kind == kitchen.KindPlate && k.Exists(held.Placed()) {
			k.RemoveItems(p.held, false, true)
			return "emptied plate"
		}
		k.RemoveItems(p.held, true, true)
		p.held = kitchen.Handle{}
		return "binned " + held.Type

	case u.Type == kitchen.UnitDelivery:
		if !k.CanServe(held.Placed()) {
			return ""
		}
		if err := k.MarkServing(p.held, u.Pos); err != nil {
			return ""
		}
		p.held = kitchen.Handle{}
		return "delivered " + held.Type

	case !placed.Valid():
		if err := k.AddToUnit(i, p.held); err != nil {
			return ""
		}
		p.held = kitchen.Handle{}
		return "placed " + held.Type

	case k.CanPlace(placed, held.Type):
		if err := k.AddItem(placed, p.held); err != nil {
			return ""
		}
		p.held = kitchen.Handle{}
		target, _ := k.Item(placed)
		if target.Type == recipe.InputFry {
			k.ResetTimer(placed)
		}
		return fmt.Sprintf("put %s on %s", held.Type, target.Type)

	case u.Type == kitchen.UnitDefault && k.UnitCanPlace(i, held.Type):
		if err := k.AddToUnit(i, p.held); err != nil {
			return ""
		}
		p.held = kitchen.Handle{}
		return "placed " + held.Type
	}
	return ""
}

// pickUp lifts the placed item, or whatever rests on a tool that cannot
// itself be lifted.
func (p *player) pickUp(k *kitchen.Kitchen, unit int, placed kitchen.Handle) string {
	it, ok := k.Item(placed)
	if !ok {
		return ""
	}
	if k.CanPickup(placed) {
		p.held = placed
		k.ClearUnit(unit)
		return "picked up " + it.Type
	}
	inner, ok := k.Item(it.Placed())
	if !ok {
		return ""
	}
	p.held = it.Placed()
	k.ClearItems(placed)
	return fmt.Sprintf("took %s from %s", inner.Type, it.Type)
}

// liftFromPlate takes the contents off a plate resting on the selected
// counter, leaving the plate where it is.
func (p *player) liftFromPlate(k *kitchen.Kitchen) string {
	if p.held.Valid() {
		return ""
	}
	i, ok := k.Selected()
	if !ok {
		return ""
	}
	u, err := k.Unit(i)
	if err != nil {
		return ""
	}
	plate, ok := k.Item(u.Placed())
	if !ok || plate.Kind != kitchen.KindPlate {
		return ""
	}
	inner, ok := k.Item(plate.Placed())
	if !ok {
		return ""
	}
	p.held = plate.Placed()
	k.ClearItems(u.Placed())
	return "lifted " + inner.Type + " off plate"
}

// chop uses the tool on the selected counter. It returns the new type of
// the processed item.
func (p *player) chop(k *kitchen.Kitchen) (string, bool) {
	i, ok := k.Selected()
	if !ok {
		return "", false
	}
	u, err := k.Unit(i)
	if err != nil {
		return "", false
	}
	tool, ok := k.Item(u.Placed())
	if !ok || !k.HandleCooking(u.Placed()) {
		return "", false
	}
	chopped, _ := k.Item(tool.Placed())
	return chopped.Type, true
}
