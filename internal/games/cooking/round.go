package cooking

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/vovakirdan/cooking-collisions/internal/config"
	"github.com/vovakirdan/cooking-collisions/internal/core"
	"github.com/vovakirdan/cooking-collisions/internal/kitchen"
	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// round owns everything that is reset when time runs out: the scoreboard,
// the order book, the order pool with its tiers, and the spawn clock.
type round struct {
	orderCfg   config.OrdersConfig
	penalty    float64
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	board  kitchen.Scoreboard
	orders *kitchen.OrderBook
	pool   *kitchen.Pool
	tiers  []recipe.Tier // pending, ascending by At
	script []string      // tutorial orders not yet shown

	elapsed    float64 // seconds of timed service, frozen during the tutorial
	sinceOrder float64
	toNext     float64
	missed     int
	expired    int
}

func newRound(cfg config.KitchenConfig, book recipe.Book, diff *config.DifficultyManager, rng *rand.Rand, tutorial bool) *round {
	r := &round{
		orderCfg:   cfg.Orders,
		penalty:    cfg.Scoring.Penalty,
		difficulty: diff,
		rng:        rng,
		board:      kitchen.Scoreboard{Timer: cfg.Scoring.StartTimer},
		orders:     kitchen.NewOrderBook(cfg.Orders.MaxActive),
		pool:       kitchen.NewPool(book.Orders.Pool...),
		toNext:     cfg.Orders.FirstInterval,
	}

	r.tiers = append(r.tiers, book.Orders.Tiers...)
	sort.SliceStable(r.tiers, func(i, j int) bool { return r.tiers[i].At < r.tiers[j].At })

	if tutorial && len(book.Orders.Tutorial) > 0 {
		r.board.Tutorial = true
		r.script = append(r.script, book.Orders.Tutorial...)
		r.feedTutorial()
	} else {
		r.spawn(kitchen.DefaultOrderLifetime)
	}
	return r
}

// tutorial reports whether the scripted part of the round is running.
func (r *round) tutorial() bool {
	return r.board.Tutorial
}

// advanceClock runs the round timers for dt seconds. Nothing counts down
// during the tutorial; the spawn clock runs faster while no order waits.
func (r *round) advanceClock(dt float64) {
	if r.tutorial() {
		return
	}
	r.elapsed += dt
	r.board.Timer -= dt
	if r.orders.Len() == 0 {
		r.sinceOrder += dt * r.orderCfg.IdleSpeedup
	} else {
		r.sinceOrder += dt
	}
}

// skipTutorial drops the remaining script and the scripted orders.
func (r *round) skipTutorial() bool {
	if !r.tutorial() {
		return false
	}
	r.script = nil
	r.orders.Clear()
	r.board.Tutorial = false
	return true
}

// record turns resolver outcomes into events and counts missed deliveries.
func (r *round) record(outcomes []kitchen.Outcome) []core.Event {
	var events []core.Event
	for _, o := range outcomes {
		switch o.Kind {
		case kitchen.OutcomeServed:
			events = append(events, core.Event{Kind: "served", Detail: o.Type, Value: o.Order.Remaining})
		case kitchen.OutcomeMissed:
			r.missed++
			events = append(events, core.Event{Kind: "missed", Detail: o.Type})
		case kitchen.OutcomeCombined:
			events = append(events, core.Event{Kind: "combined", Detail: o.Type})
		}
	}
	return events
}

// settle runs the end-of-frame order bookkeeping: tier changes, expiry,
// spawning and the tutorial script.
func (r *round) settle(dt float64) []core.Event {
	var events []core.Event

	for len(r.tiers) > 0 && r.board.Delivered >= r.tiers[0].At {
		t := r.tiers[0]
		r.tiers = r.tiers[1:]
		r.pool.AddType(t.Add...)
		r.pool.RemoveType(t.Remove...)
		events = append(events, core.Event{
			Kind:   "tier",
			Detail: fmt.Sprintf("+[%s] -[%s]", strings.Join(t.Add, ", "), strings.Join(t.Remove, ", ")),
			Value:  float64(t.At),
		})
	}

	for _, o := range r.orders.Age(dt) {
		r.expired++
		if !r.tutorial() {
			r.board.Timer -= r.penalty
		}
		events = append(events, core.Event{Kind: "expired", Detail: o.Dish})
	}

	if !r.tutorial() && r.sinceOrder >= r.toNext && !r.orders.Full() {
		r.sinceOrder -= r.toNext
		t := r.effectiveTime()
		r.toNext = r.orderCfg.Interval.At(t)
		if o, ok := r.spawn(r.orderCfg.Lifetime.At(t)); ok {
			events = append(events, core.Event{Kind: "order", Detail: o.Dish, Value: o.MaxTime})
		}
	}

	if r.tutorial() && r.orders.Len() == 0 {
		if !r.feedTutorial() {
			events = append(events, core.Event{Kind: "tutorial_done"})
		}
	}

	return events
}

// feedTutorial shows the next scripted order. Once the script is used up
// the tutorial ends and a regular order takes its place. It reports
// whether the tutorial is still running.
func (r *round) feedTutorial() bool {
	if len(r.script) > 0 {
		r.orders.Add(kitchen.NewOrder(r.script[0], r.orderCfg.TutorialLifetime))
		r.script = r.script[1:]
		return true
	}
	r.board.Tutorial = false
	r.spawn(r.orderCfg.TutorialLifetime)
	return false
}

func (r *round) spawn(lifetime float64) (kitchen.Order, bool) {
	o, ok := r.pool.Random(r.rng, lifetime)
	if !ok || !r.orders.Add(o) {
		return kitchen.Order{}, false
	}
	return o, true
}

// effectiveTime is the clock fed to the order curves.
func (r *round) effectiveTime() float64 {
	if r.difficulty == nil {
		return r.elapsed
	}
	return r.difficulty.EffectiveTime(r.elapsed, r.board.Delivered)
}

// over reports whether the game timer has run out.
func (r *round) over() bool {
	return !r.tutorial() && r.board.Timer <= 0
}
