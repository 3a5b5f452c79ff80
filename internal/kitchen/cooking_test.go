package kitchen

import (
	"testing"

	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

// panWith puts a frying pan holding typ on a counter.
func panWith(t *testing.T, k *Kitchen, typ string) (pan, food Handle) {
	t.Helper()
	u := k.AddUnit(Point{}, UnitDefault, "")
	pan = k.NewItem(KindTool, recipe.InputFry)
	if err := k.AddToUnit(u, pan); err != nil {
		t.Fatal(err)
	}
	food = k.NewItem(KindIngredient, typ)
	if err := k.AddItem(pan, food); err != nil {
		t.Fatal(err)
	}
	return pan, food
}

// run steps the kitchen n times by dt.
func run(k *Kitchen, n int, dt float64) {
	for range n {
		k.Step(dt, NewOrderBook(0), &Scoreboard{})
	}
}

func TestFryingCooksExactlyOnce(t *testing.T) {
	k := newTestKitchen()
	pan, patty := panWith(t, k, "patty")

	run(k, 9, 0.5)
	if got := mustItem(t, k, patty); got.State != StateDefault {
		t.Fatalf("cooked early at 4.5s: %s", got.String())
	}

	run(k, 1, 0.5)
	got := mustItem(t, k, patty)
	if got.State != StateCooked || got.Type != "cooked patty" {
		t.Fatalf("after 5.0s got %s, want cooked patty", got.String())
	}
	if timer := mustItem(t, k, pan).Timer; timer != 0 {
		t.Errorf("pan timer = %v after cooking, want 0", timer)
	}

	run(k, 1, 0.5)
	got = mustItem(t, k, patty)
	if got.State != StateCooked || got.Type != "cooked patty" {
		t.Errorf("cooking re-triggered: %s", got.String())
	}
}

func TestFryingBurnsAfterEightSeconds(t *testing.T) {
	k := newTestKitchen()
	_, patty := panWith(t, k, "patty")

	run(k, 10, 0.5) // 5.0s: cooked
	run(k, 5, 0.5)  // 7.5s
	if got := mustItem(t, k, patty); got.State != StateCooked {
		t.Fatalf("burnt early at 7.5s: %s", got.String())
	}

	run(k, 1, 0.5) // 8.0s
	got := mustItem(t, k, patty)
	if got.State != StateBurnt || got.Type != "burnt patty" {
		t.Fatalf("after 8.0s got %s, want burnt patty", got.String())
	}

	run(k, 40, 0.5)
	got = mustItem(t, k, patty)
	if got.State != StateBurnt || got.Type != "burnt patty" {
		t.Errorf("burnt item changed again: %s", got.String())
	}
}

func TestFryingBurnDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.BurnEnabled = false
	k := New(sandwichGraph(), rules)
	_, patty := panWith(t, k, "patty")

	run(k, 40, 0.5)
	if got := mustItem(t, k, patty); got.State != StateCooked || got.Type != "cooked patty" {
		t.Errorf("got %s, want cooked patty to stay cooked", got.String())
	}
}

func TestFryingTimerResetsForUnfryableItem(t *testing.T) {
	k := newTestKitchen()
	pan, tomato := panWith(t, k, "tomato")

	run(k, 20, 0.5)
	if timer := mustItem(t, k, pan).Timer; timer != 0 {
		t.Errorf("timer = %v with unfryable item, want 0", timer)
	}
	if got := mustItem(t, k, tomato); got.State != StateDefault || got.Type != "tomato" {
		t.Errorf("unfryable item changed: %s", got.String())
	}
}

func TestFryingCustomBurnInput(t *testing.T) {
	g := sandwichGraph()
	g.AddNode("charred patty")
	g.AddEdge("cooked patty", "charred patty", "overcook")

	rules := DefaultRules()
	rules.BurnInput = "overcook"
	k := New(g, rules)
	_, patty := panWith(t, k, "patty")

	run(k, 16, 0.5)
	if got := mustItem(t, k, patty); got.State != StateBurnt || got.Type != "charred patty" {
		t.Errorf("got %s, want charred patty", got.String())
	}
}

func TestHandleCooking(t *testing.T) {
	k := newTestKitchen()
	board := k.NewItem(KindTool, recipe.InputChop)
	tomato := k.NewItem(KindIngredient, "tomato")
	_ = k.AddItem(board, tomato)

	if !k.HandleCooking(board) {
		t.Fatal("tomato should be chopped")
	}
	got := mustItem(t, k, tomato)
	if got.Type != "chopped tomato" || got.State != StateChopped {
		t.Errorf("got %s, want chopped tomato", got.String())
	}
	if got.Size != k.Rules().ChoppedSize {
		t.Errorf("Size = %v, want %v", got.Size, k.Rules().ChoppedSize)
	}

	if k.HandleCooking(board) {
		t.Error("chopped tomato has no further chopping edge")
	}

	emptyBoard := k.NewItem(KindTool, recipe.InputChop)
	if k.HandleCooking(emptyBoard) {
		t.Error("empty board should do nothing")
	}

	pan, _ := panWith(t, k, "patty")
	if k.HandleCooking(pan) {
		t.Error("only chopping boards react to the action")
	}
}
