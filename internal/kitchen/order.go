package kitchen

import "math/rand"

// DefaultOrderLifetime is the countdown of an order built without one.
const DefaultOrderLifetime = 60.0

// Order is a requested dish with a countdown.
type Order struct {
	Dish      string
	Remaining float64
	MaxTime   float64
	Index     int // display position
}

// NewOrder creates an order for a named dish.
func NewOrder(dish string, lifetime float64) Order {
	if lifetime <= 0 {
		lifetime = DefaultOrderLifetime
	}
	return Order{Dish: dish, Remaining: lifetime, MaxTime: lifetime}
}

// Progress returns the elapsed share of the order's lifetime in [0, 1].
func (o Order) Progress() float64 {
	if o.MaxTime <= 0 {
		return 1
	}
	p := 1 - o.Remaining/o.MaxTime
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Pool is the set of dish types eligible for random orders.
type Pool struct {
	types []string
}

// NewPool creates a pool holding types.
func NewPool(types ...string) *Pool {
	p := &Pool{}
	p.AddType(types...)
	return p
}

// AddType makes types orderable. Types already present are ignored.
func (p *Pool) AddType(types ...string) {
	for _, t := range types {
		if !p.Has(t) {
			p.types = append(p.types, t)
		}
	}
}

// RemoveType stops types from being ordered.
func (p *Pool) RemoveType(types ...string) {
	kept := p.types[:0]
	for _, t := range p.types {
		drop := false
		for _, r := range types {
			if t == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, t)
		}
	}
	p.types = kept
}

// Has reports whether t is orderable.
func (p *Pool) Has(t string) bool {
	for _, have := range p.types {
		if have == t {
			return true
		}
	}
	return false
}

// Types returns the orderable types in insertion order.
func (p *Pool) Types() []string {
	out := make([]string, len(p.types))
	copy(out, p.types)
	return out
}

// Random creates an order for a dish chosen uniformly from the pool.
func (p *Pool) Random(rng *rand.Rand, lifetime float64) (Order, bool) {
	if len(p.types) == 0 {
		return Order{}, false
	}
	return NewOrder(p.types[rng.Intn(len(p.types))], lifetime), true
}

// OrderBook is the list of active orders, oldest first.
type OrderBook struct {
	orders []Order
	max    int
}

// NewOrderBook creates a book holding at most max orders. max <= 0 means
// no limit.
func NewOrderBook(max int) *OrderBook {
	return &OrderBook{max: max}
}

// Add appends o. It reports false when the book is full.
func (b *OrderBook) Add(o Order) bool {
	if b.Full() {
		return false
	}
	b.orders = append(b.orders, o)
	b.reindex()
	return true
}

// Full reports whether no more orders fit.
func (b *OrderBook) Full() bool {
	return b.max > 0 && len(b.orders) >= b.max
}

// Take removes and returns the first order for dish, in list order.
func (b *OrderBook) Take(dish string) (Order, bool) {
	for i, o := range b.orders {
		if o.Dish == dish {
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			b.reindex()
			return o, true
		}
	}
	return Order{}, false
}

// Age counts every order down by dt and removes and returns the expired ones.
func (b *OrderBook) Age(dt float64) []Order {
	var expired []Order
	kept := b.orders[:0]
	for _, o := range b.orders {
		o.Remaining -= dt
		if o.Remaining <= 0 {
			expired = append(expired, o)
			continue
		}
		kept = append(kept, o)
	}
	b.orders = kept
	b.reindex()
	return expired
}

// Dishes returns the ordered dish names in list order.
func (b *OrderBook) Dishes() []string {
	out := make([]string, len(b.orders))
	for i, o := range b.orders {
		out[i] = o.Dish
	}
	return out
}

// Orders returns a copy of the active orders.
func (b *OrderBook) Orders() []Order {
	out := make([]Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Len returns the number of active orders.
func (b *OrderBook) Len() int {
	return len(b.orders)
}

// Clear drops every order.
func (b *OrderBook) Clear() {
	b.orders = nil
}

func (b *OrderBook) reindex() {
	for i := range b.orders {
		b.orders[i].Index = i
	}
}
