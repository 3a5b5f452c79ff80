package kitchen

import (
	"reflect"
	"testing"
)

// deliver puts dish on a fresh plate and flags the plate as served.
func deliver(t *testing.T, k *Kitchen, dish string) (plate, food Handle) {
	t.Helper()
	plate = k.NewItem(KindPlate, "")
	food = k.NewItem(KindIngredient, dish)
	if err := k.AddItem(plate, food); err != nil {
		t.Fatal(err)
	}
	if err := k.MarkServing(plate, Point{X: 3}); err != nil {
		t.Fatal(err)
	}
	return plate, food
}

func bookWith(dishes ...string) *OrderBook {
	b := NewOrderBook(0)
	for _, d := range dishes {
		b.Add(NewOrder(d, 60))
	}
	return b
}

func TestServeFirstMatchingOrder(t *testing.T) {
	k := newTestKitchen()
	plate, food := deliver(t, k, "tomato sandwich")
	orders := bookWith("tomato sandwich", "cooked patty", "tomato sandwich")
	sb := &Scoreboard{Timer: 140}

	out := k.Step(0.016, orders, sb)

	if len(out) != 1 || out[0].Kind != OutcomeServed || out[0].Order.Index != 0 {
		t.Fatalf("outcomes = %+v, want one served order at index 0", out)
	}
	if got := orders.Dishes(); !reflect.DeepEqual(got, []string{"cooked patty", "tomato sandwich"}) {
		t.Errorf("orders after serving = %v", got)
	}
	if sb.Score != 10 {
		t.Errorf("Score = %d, want 10", sb.Score)
	}
	if sb.Timer != 150 {
		t.Errorf("Timer = %v, want capped at 150", sb.Timer)
	}
	if sb.Delivered != 1 {
		t.Errorf("Delivered = %d, want 1", sb.Delivered)
	}
	if k.Exists(plate) || k.Exists(food) {
		t.Error("served carrier and dish should be destroyed")
	}
}

func TestServeAddsBonusBelowCap(t *testing.T) {
	k := newTestKitchen()
	deliver(t, k, "cooked patty")
	sb := &Scoreboard{Timer: 100}

	k.Step(0.016, bookWith("cooked patty"), sb)

	if sb.Timer != 120 {
		t.Errorf("Timer = %v, want 120", sb.Timer)
	}
}

func TestServeWithoutMatchingOrder(t *testing.T) {
	k := newTestKitchen()
	deliver(t, k, "cooked patty")
	orders := bookWith("tomato sandwich")
	sb := &Scoreboard{Timer: 100, Score: 30}

	out := k.Step(0.016, orders, sb)

	if len(out) != 1 || out[0].Kind != OutcomeMissed {
		t.Fatalf("outcomes = %+v, want one miss", out)
	}
	if sb.Timer != 85 {
		t.Errorf("Timer = %v, want 85 after penalty", sb.Timer)
	}
	if sb.Score != 30 || sb.Delivered != 0 {
		t.Errorf("score/delivered changed: %d/%d", sb.Score, sb.Delivered)
	}
	if got := orders.Dishes(); !reflect.DeepEqual(got, []string{"tomato sandwich"}) {
		t.Errorf("orders changed: %v", got)
	}
}

func TestServeInTutorial(t *testing.T) {
	k := newTestKitchen()
	deliver(t, k, "tomato sandwich")
	orders := bookWith("tomato sandwich")
	sb := &Scoreboard{Timer: 120, Tutorial: true}

	k.Step(0.016, orders, sb)

	if orders.Len() != 0 {
		t.Error("tutorial delivery should still fulfil the order")
	}
	if sb.Score != 0 || sb.Timer != 120 {
		t.Errorf("tutorial changed score/timer: %d/%v", sb.Score, sb.Timer)
	}
	if sb.Delivered != 0 {
		t.Errorf("Delivered = %d, tutorial dishes must not count", sb.Delivered)
	}

	deliver(t, k, "cooked patty")
	k.Step(0.016, orders, sb)
	if sb.Timer != 120 {
		t.Errorf("tutorial miss applied a penalty: %v", sb.Timer)
	}
}

func TestIntentPrecedence(t *testing.T) {
	k := newTestKitchen()
	plate, _ := deliver(t, k, "tomato sandwich")
	k.RemoveItems(plate, true, false)

	intents := k.Intents()
	var kinds []IntentKind
	for _, in := range intents {
		if in.Item == plate {
			kinds = append(kinds, in.Kind)
		}
	}
	if !reflect.DeepEqual(kinds, []IntentKind{IntentRemove}) {
		t.Errorf("plate intents = %v, want only remove", kinds)
	}
}

func TestFlagsSurviveUntilReset(t *testing.T) {
	k := newTestKitchen()
	plate := k.NewItem(KindPlate, "")
	_ = k.AddItem(plate, k.NewItem(KindIngredient, "chopped tomato"))
	_ = k.AddItem(plate, k.NewItem(KindIngredient, "bread"))

	intents := k.Tick(0.016)
	if len(k.Intents()) != len(intents) {
		t.Fatal("flags must survive the mark phase")
	}

	out := k.Resolve(intents, NewOrderBook(0), &Scoreboard{})
	kinds := map[OutcomeKind]int{}
	for _, o := range out {
		kinds[o.Kind]++
	}
	if kinds[OutcomeCombined] != 1 || kinds[OutcomeRemoved] != 2 {
		t.Errorf("outcomes = %v, want 1 combined and 2 removed", kinds)
	}
	if c, _, _ := mustItem(t, k, plate).Flags(); !c {
		t.Error("Resolve must not clear flags")
	}

	k.ResetFlags()
	if n := len(k.Intents()); n != 0 {
		t.Errorf("%d intents left after ResetFlags", n)
	}

	placed := mustItem(t, k, plate).Placed()
	if got := mustItem(t, k, placed); got.Type != "tomato sandwich" {
		t.Errorf("plate holds %s", got.Type)
	}
	live := k.Live()
	if len(live) != 2 || live[0] != plate || live[1] != placed {
		t.Errorf("live = %v, want [plate, sandwich]", live)
	}
}

func TestResolveSkipsStaleIntents(t *testing.T) {
	k := newTestKitchen()
	h := k.NewItem(KindIngredient, "tomato")
	k.RemoveItems(h, true, false)
	intents := k.Intents()

	k.Resolve(intents, NewOrderBook(0), &Scoreboard{})
	out := k.Resolve(intents, NewOrderBook(0), &Scoreboard{})

	if len(out) != 0 {
		t.Errorf("replayed intents produced %v", out)
	}
	if k.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d, want 0", k.ItemCount())
	}
}

func TestClearKeepsUnits(t *testing.T) {
	k := newTestKitchen()
	u := k.AddUnit(Point{}, UnitSource, "tomato")
	k.RefillSources()

	k.Clear()

	if k.ItemCount() != 0 || len(k.Live()) != 0 {
		t.Error("Clear should drop every item")
	}
	unit, err := k.Unit(u)
	if err != nil || !unit.Empty() || unit.Type != UnitSource {
		t.Errorf("unit after Clear = %+v, %v", unit, err)
	}
}
