package kitchen

// IntentKind is what a flagged item or unit asks the resolver to do.
type IntentKind int

const (
	IntentRemove IntentKind = iota
	IntentCombine
	IntentServe
)

func (k IntentKind) String() string {
	switch k {
	case IntentRemove:
		return "remove"
	case IntentCombine:
		return "combine"
	case IntentServe:
		return "serve"
	default:
		return "unknown"
	}
}

// Intent is one pending consequence of the mark phase.
type Intent struct {
	Kind     IntentKind
	Item     Handle // flagged item; zero for unit intents
	Unit     int    // flagged unit index, -1 for item intents
	Pos      Point
	Produced Handle // new item of a combine intent
}

// Intents collects the flags raised since the last ResetFlags. Items come
// first in registration order, each contributing at most one intent with
// remove taking precedence over combine and combine over serve. Unit
// combines follow in unit order.
func (k *Kitchen) Intents() []Intent {
	var out []Intent
	for _, h := range k.live {
		it, ok := k.items.get(h)
		if !ok {
			continue
		}
		switch {
		case it.remove:
			out = append(out, Intent{Kind: IntentRemove, Item: h, Unit: -1, Pos: it.Pos})
		case it.combine:
			out = append(out, Intent{Kind: IntentCombine, Item: h, Unit: -1, Pos: it.Pos, Produced: it.produced})
		case it.serving:
			out = append(out, Intent{Kind: IntentServe, Item: h, Unit: -1, Pos: it.Pos})
		}
	}
	for i, u := range k.units {
		if u.combine {
			out = append(out, Intent{Kind: IntentCombine, Unit: i, Pos: u.Pos, Produced: u.produced})
		}
	}
	return out
}

// Scoreboard holds the round accumulators the resolver mutates.
// In tutorial mode deliveries still fulfil orders but leave score and timer
// alone.
type Scoreboard struct {
	Score     int
	Timer     float64
	Delivered int
	Tutorial  bool
}

// OutcomeKind classifies a resolved intent.
type OutcomeKind int

const (
	OutcomeRemoved OutcomeKind = iota
	OutcomeCombined
	OutcomeServed
	OutcomeMissed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRemoved:
		return "removed"
	case OutcomeCombined:
		return "combined"
	case OutcomeServed:
		return "served"
	case OutcomeMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// Outcome reports what the resolver did for one intent.
type Outcome struct {
	Kind  OutcomeKind
	Type  string // removed, combined or served type
	Order Order  // fulfilled order, for OutcomeServed
	Pos   Point
}

// Resolve is the apply phase. It is the only place items are destroyed or
// registered as live. Intents whose item has already gone are skipped.
func (k *Kitchen) Resolve(intents []Intent, orders *OrderBook, sb *Scoreboard) []Outcome {
	var out []Outcome
	for _, in := range intents {
		switch in.Kind {
		case IntentRemove:
			it, ok := k.items.get(in.Item)
			if !ok {
				continue
			}
			typ := it.Type
			k.destroy(in.Item)
			out = append(out, Outcome{Kind: OutcomeRemoved, Type: typ, Pos: in.Pos})

		case IntentCombine:
			it, ok := k.items.get(in.Produced)
			if !ok {
				continue
			}
			k.register(in.Produced)
			out = append(out, Outcome{Kind: OutcomeCombined, Type: it.Type, Pos: in.Pos})

		case IntentServe:
			if o, ok := k.serve(in, orders, sb); ok {
				out = append(out, o)
			}
		}
	}
	return out
}

func (k *Kitchen) serve(in Intent, orders *OrderBook, sb *Scoreboard) (Outcome, bool) {
	carrier, ok := k.items.get(in.Item)
	if !ok {
		return Outcome{}, false
	}
	dish := ""
	if placed, ok := k.items.get(carrier.Placed()); ok {
		dish = placed.Type
	}

	// A delivered carrier leaves the kitchen with everything on it.
	k.destroyTree(in.Item)

	if order, ok := orders.Take(dish); ok {
		if !sb.Tutorial {
			sb.Delivered++
			sb.Score += k.rules.ServeScore
			sb.Timer += k.rules.ServeBonus
			if sb.Timer > k.rules.TimerCap {
				sb.Timer = k.rules.TimerCap
			}
		}
		return Outcome{Kind: OutcomeServed, Type: dish, Order: order, Pos: in.Pos}, true
	}

	if !sb.Tutorial {
		sb.Timer -= k.rules.Penalty
	}
	return Outcome{Kind: OutcomeMissed, Type: dish, Pos: in.Pos}, true
}

// Step runs one full frame of the protocol: mark, resolve, reset.
func (k *Kitchen) Step(dt float64, orders *OrderBook, sb *Scoreboard) []Outcome {
	intents := k.Tick(dt)
	out := k.Resolve(intents, orders, sb)
	k.ResetFlags()
	return out
}

func (k *Kitchen) register(h Handle) {
	for _, l := range k.live {
		if l == h {
			return
		}
	}
	k.live = append(k.live, h)
}

// destroy deletes h from the arena and the live list.
func (k *Kitchen) destroy(h Handle) {
	if !k.items.remove(h) {
		return
	}
	for i, l := range k.live {
		if l == h {
			k.live = append(k.live[:i], k.live[i+1:]...)
			break
		}
	}
}

// destroyTree deletes h and everything stacked on it.
func (k *Kitchen) destroyTree(h Handle) {
	it, ok := k.items.get(h)
	if !ok {
		return
	}
	for _, child := range it.Slots {
		k.destroyTree(child)
	}
	k.destroy(h)
}
