package kitchen

import "github.com/vovakirdan/cooking-collisions/internal/recipe"

// fry advances the frying-pan cycle of pan by dt.
//
// The timer only accumulates while the placed item can still be fried;
// anything else resets it every tick. A default item cooks once CookAfter
// is reached, and a cooked item burns after a further BurnAfter-CookAfter.
// Both transitions reset the timer so each fires exactly once.
func (k *Kitchen) fry(pan *Item, dt float64) {
	if pan.Kind != KindTool || pan.Type != recipe.InputFry {
		return
	}
	placed, ok := k.items.get(pan.Placed())
	if !ok {
		return
	}

	pan.Timer += dt
	if !k.fryable(placed) {
		pan.Timer = 0
		return
	}

	switch {
	case placed.State == StateDefault && pan.Timer >= k.rules.CookAfter:
		next, ok := k.graph.ApplyInput(placed.Type, recipe.InputFry)
		if !ok {
			return
		}
		placed.State = StateCooked
		placed.Type = next
		pan.Timer = 0
	case k.burns(placed) && pan.Timer >= k.rules.burnDelay():
		next, _ := k.graph.ApplyInput(placed.Type, k.rules.BurnInput)
		placed.State = StateBurnt
		placed.Type = next
		pan.Timer = 0
	}
}

func (k *Kitchen) fryable(it *Item) bool {
	if it.Kind != KindIngredient {
		return false
	}
	return k.graph.Accepts(it.Type, recipe.InputFry) || k.burns(it)
}

func (k *Kitchen) burns(it *Item) bool {
	if !k.rules.BurnEnabled || it.State != StateCooked {
		return false
	}
	return k.graph.Accepts(it.Type, k.rules.BurnInput)
}

// HandleCooking runs the player's explicit action on a tool. Only a
// chopping board reacts: its placed item is chopped when the recipe graph
// has a chopping edge for it. It reports whether anything changed.
func (k *Kitchen) HandleCooking(tool Handle) bool {
	it, ok := k.items.get(tool)
	if !ok || it.Type != recipe.InputChop {
		return false
	}
	placed, ok := k.items.get(it.Placed())
	if !ok {
		return false
	}
	next, ok := k.graph.ApplyInput(placed.Type, recipe.InputChop)
	if !ok {
		return false
	}
	placed.State = StateChopped
	placed.Type = next
	placed.Size = k.rules.ChoppedSize
	return true
}
