package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 150} {
		if _, err := store.SaveScore("kitchen", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("kitchen_tutorial", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("kitchen", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{200, 150, 100}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w || scores[i].Mode != "kitchen" {
			t.Errorf("scores[%d] = %+v, want score %d", i, scores[i], w)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("kitchen")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty mode, got %d", high)
	}

	store.SaveScore("kitchen", 30)
	store.SaveScore("kitchen", 90)
	store.SaveScore("kitchen", 60)

	if high, _ = store.HighScore("kitchen"); high != 90 {
		t.Errorf("Expected high score of 90, got %d", high)
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(Round{Mode: "kitchen", Score: 70, Delivered: 7, Missed: 1, Expired: 2, Duration: 245})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if len(id) != 36 {
		t.Fatalf("expected a generated uuid, got %q", id)
	}

	r, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("round not found")
	}
	if r.Score != 70 || r.Delivered != 7 || r.Missed != 1 || r.Expired != 2 || r.Duration != 245 {
		t.Errorf("round = %+v", r)
	}

	if high, _ := store.HighScore("kitchen"); high != 70 {
		t.Errorf("SaveRound should also record the score, high = %d", high)
	}

	missing, err := store.RoundByID("no-such-round")
	if err != nil || missing != nil {
		t.Errorf("RoundByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreSaveRoundKeepsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(Round{RoundID: "fixed-id", Mode: "kitchen"})
	if err != nil || id != "fixed-id" {
		t.Fatalf("SaveRound() = %q, %v", id, err)
	}
	if _, err := store.SaveRound(Round{RoundID: "fixed-id", Mode: "kitchen"}); err == nil {
		t.Fatal("duplicate round id should fail")
	}
	if n, _ := store.TopScores("kitchen", 10); len(n) != 1 {
		t.Fatalf("failed round must not leave a score behind, got %d", len(n))
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRound(Round{Mode: "kitchen", Score: i * 10})
	}
	store.SaveRound(Round{Mode: "kitchen_tutorial", Score: 5})

	rounds, err := store.RecentRounds("kitchen", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].Score != 40 || rounds[1].Score != 30 {
		t.Errorf("rounds not newest first: %d, %d", rounds[0].Score, rounds[1].Score)
	}

	all, _ := store.RecentRounds("", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 rounds across modes, got %d", len(all))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("kitchen")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.RoundsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(Round{Mode: "kitchen", Score: 20, Delivered: 2})
	store.SaveRound(Round{Mode: "kitchen", Score: 40, Delivered: 4})
	store.SaveRound(Round{Mode: "kitchen_tutorial", Score: 0, Delivered: 6})

	stats, err := store.GetModeStats("kitchen")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.RoundsCount != 2 || stats.HighScore != 40 || stats.AvgScore != 30 ||
		stats.TotalDelivered != 6 || stats.BestDelivered != 4 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 || all["kitchen_tutorial"].BestDelivered != 6 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Mode: "kitchen", Score: 10})
	store.SaveRound(Round{Mode: "kitchen_tutorial", Score: 20})

	if err := store.ClearScores("kitchen"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("kitchen", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.RecentRounds("kitchen", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if rounds, _ := store.RecentRounds("kitchen_tutorial", 10); len(rounds) != 1 {
		t.Errorf("Tutorial rounds should survive clearing kitchen")
	}
}
