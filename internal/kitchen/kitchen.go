package kitchen

import (
	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// Kitchen owns every item and counter unit of a round.
type Kitchen struct {
	graph *recipe.Graph
	rules Rules
	items arena
	live  []Handle // registration order
	units []*Unit
}

// New creates an empty kitchen over a shared, read-only recipe graph.
func New(graph *recipe.Graph, rules Rules) *Kitchen {
	return &Kitchen{graph: graph, rules: rules}
}

// Configure swaps the recipe graph and tuning. Call it between rounds,
// before Reset; items already in the kitchen were built for the old graph.
func (k *Kitchen) Configure(graph *recipe.Graph, rules Rules) {
	k.graph = graph
	k.rules = rules
}

// Graph returns the recipe graph the kitchen queries.
func (k *Kitchen) Graph() *recipe.Graph {
	return k.graph
}

// Rules returns the active tuning.
func (k *Kitchen) Rules() Rules {
	return k.rules
}

// Live returns the registered items in registration order.
func (k *Kitchen) Live() []Handle {
	out := make([]Handle, len(k.live))
	copy(out, k.live)
	return out
}

// ItemCount returns how many items are stored, registered or not.
func (k *Kitchen) ItemCount() int {
	return k.items.len()
}

// Clear drops every item and empties every unit. Units keep their type.
// Handles issued before Clear go stale.
func (k *Kitchen) Clear() {
	var stored []Handle
	k.items.each(func(h Handle, _ *Item) {
		stored = append(stored, h)
	})
	for _, h := range stored {
		k.items.remove(h)
	}
	k.live = nil
	for _, u := range k.units {
		u.Slots = [2]Handle{}
		u.Selected = false
		u.combine = false
		u.produced = Handle{}
	}
}

// Tick runs the mark phase: every live item combines and cooks, plates
// first, then every unit combines. Nothing is destroyed or registered here;
// the returned intents say what the resolver has to do.
func (k *Kitchen) Tick(dt float64) []Intent {
	order := make([]Handle, 0, len(k.live))
	for _, h := range k.live {
		if it, ok := k.items.get(h); ok && it.Kind == KindPlate {
			order = append(order, h)
		}
	}
	for _, h := range k.live {
		if it, ok := k.items.get(h); ok && it.Kind != KindPlate {
			order = append(order, h)
		}
	}

	for _, h := range order {
		it, ok := k.items.get(h)
		if !ok || it.remove {
			continue
		}
		k.CombineItems(h)
		k.fry(it, dt)
		k.SetPos(it.Slots[0], it.Pos, it.Rotation)
	}
	for i := range k.units {
		k.CombineUnit(i)
	}

	return k.Intents()
}

// ResetFlags clears every per-tick flag. Call it once per frame, after
// Resolve.
func (k *Kitchen) ResetFlags() {
	k.items.each(func(_ Handle, it *Item) {
		it.combine, it.remove, it.serving = false, false, false
		it.produced = Handle{}
	})
	for _, u := range k.units {
		u.combine = false
		u.produced = Handle{}
	}
}
