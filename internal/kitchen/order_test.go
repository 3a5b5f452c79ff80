package kitchen

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestPoolAddRemove(t *testing.T) {
	p := NewPool("tomato", "bread")
	p.AddType("bread", "patty")

	if got := p.Types(); !reflect.DeepEqual(got, []string{"tomato", "bread", "patty"}) {
		t.Errorf("Types() = %v", got)
	}

	p.RemoveType("tomato", "pizza")
	if got := p.Types(); !reflect.DeepEqual(got, []string{"bread", "patty"}) {
		t.Errorf("Types() after remove = %v", got)
	}
	if p.Has("tomato") {
		t.Error("tomato should be gone")
	}
}

func TestPoolRandom(t *testing.T) {
	p := NewPool("tomato", "bread", "patty")
	rng := rand.New(rand.NewSource(7))

	seen := map[string]bool{}
	for range 200 {
		o, ok := p.Random(rng, 30)
		if !ok {
			t.Fatal("Random on a non-empty pool failed")
		}
		if !p.Has(o.Dish) {
			t.Fatalf("Random picked %q outside the pool", o.Dish)
		}
		if o.Remaining != 30 || o.MaxTime != 30 {
			t.Fatalf("lifetime = %v/%v, want 30", o.Remaining, o.MaxTime)
		}
		seen[o.Dish] = true
	}
	if len(seen) != 3 {
		t.Errorf("200 draws only hit %v", seen)
	}

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for range 20 {
		oa, _ := p.Random(a, 10)
		ob, _ := p.Random(b, 10)
		if oa.Dish != ob.Dish {
			t.Fatal("same seed should draw the same dishes")
		}
	}

	if _, ok := NewPool().Random(rng, 10); ok {
		t.Error("Random on an empty pool should fail")
	}
}

func TestNewOrderDefaultLifetime(t *testing.T) {
	o := NewOrder("tomato", 0)
	if o.MaxTime != DefaultOrderLifetime || o.Remaining != DefaultOrderLifetime {
		t.Errorf("got %+v, want default lifetime", o)
	}
	if o.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", o.Progress())
	}
	o.Remaining = 15
	if o.Progress() != 0.75 {
		t.Errorf("Progress() = %v, want 0.75", o.Progress())
	}
}

func TestOrderBookCapacity(t *testing.T) {
	b := NewOrderBook(2)
	if !b.Add(NewOrder("a", 10)) || !b.Add(NewOrder("b", 10)) {
		t.Fatal("first two orders should fit")
	}
	if b.Add(NewOrder("c", 10)) {
		t.Error("third order should be refused")
	}
	if !b.Full() || b.Len() != 2 {
		t.Errorf("Full() = %v, Len() = %d", b.Full(), b.Len())
	}
}

func TestOrderBookTake(t *testing.T) {
	b := bookWith("a", "b", "a")

	o, ok := b.Take("a")
	if !ok || o.Index != 0 {
		t.Fatalf("Take(a) = %+v, %v; want the first a", o, ok)
	}
	if got := b.Dishes(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Dishes() = %v", got)
	}
	for i, o := range b.Orders() {
		if o.Index != i {
			t.Errorf("order %d has Index %d", i, o.Index)
		}
	}
	if _, ok := b.Take("z"); ok {
		t.Error("Take of an unordered dish should fail")
	}
}

func TestOrderBookAge(t *testing.T) {
	b := NewOrderBook(0)
	b.Add(NewOrder("short", 1))
	b.Add(NewOrder("long", 10))

	if expired := b.Age(0.5); len(expired) != 0 {
		t.Fatalf("nothing should expire yet: %v", expired)
	}
	expired := b.Age(0.5)
	if len(expired) != 1 || expired[0].Dish != "short" {
		t.Fatalf("expired = %v, want short", expired)
	}
	orders := b.Orders()
	if len(orders) != 1 || orders[0].Dish != "long" || orders[0].Index != 0 || orders[0].Remaining != 9 {
		t.Errorf("remaining orders = %+v", orders)
	}
}
