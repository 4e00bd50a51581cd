package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestKVGetSet(t *testing.T) {
	kv := openTestStore(t).KV("alice")

	if _, ok, err := kv.Get("high_score"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := kv.Set("high_score", "120"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := kv.Set("high_score", "340"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	value, ok, err := kv.Get("high_score")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if value != "340" {
		t.Errorf("Get() = %q, expected 340", value)
	}

	if err := kv.Delete("high_score"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := kv.Get("high_score"); ok {
		t.Error("key should be gone after Delete()")
	}
}

func TestKVNamespacesAreIsolated(t *testing.T) {
	store := openTestStore(t)

	if err := store.KV("alice").Set("total_coins", "10"); err != nil {
		t.Fatal(err)
	}
	if err := store.KV("bob").Set("total_coins", "99"); err != nil {
		t.Fatal(err)
	}

	got, _, _ := store.KV("alice").Get("total_coins")
	if got != "10" {
		t.Errorf("alice total_coins = %q, expected 10", got)
	}
	if _, ok, _ := store.KV("").Get("total_coins"); ok {
		t.Error("local namespace should not see other players' keys")
	}
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []RunRecord{
		{Player: "alice", Score: 100, Coins: 3},
		{Player: "alice", Score: 450, Coins: 12, ContinuesUsed: 1, Duration: 90 * time.Second},
		{Player: "bob", Score: 300},
		{Score: 50},
	} {
		id, err := store.SaveRun(run)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if len(id) != 36 {
			t.Errorf("SaveRun() id %q does not look like a UUID", id)
		}
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 runs, got %d", len(all))
	}
	if all[0].Score != 450 || all[1].Score != 300 || all[3].Score != 50 {
		t.Errorf("runs not sorted by score: %+v", all)
	}
	if all[0].Duration != 90*time.Second || all[0].ContinuesUsed != 1 {
		t.Errorf("run fields not preserved: %+v", all[0])
	}
	if all[3].Player != LocalPlayer {
		t.Errorf("empty player should default to %q, got %q", LocalPlayer, all[3].Player)
	}

	alice, err := store.TopRuns("alice", 1)
	if err != nil {
		t.Fatalf("TopRuns(alice) failed: %v", err)
	}
	if len(alice) != 1 || alice[0].Score != 450 {
		t.Errorf("TopRuns(alice, 1) = %+v", alice)
	}
}

func TestSaveRunUpdatesExistingID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Player: "alice", Score: 120})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	again, err := store.SaveRun(RunRecord{ID: id, Player: "alice", Score: 340, ContinuesUsed: 1})
	if err != nil {
		t.Fatalf("SaveRun() with an existing id failed: %v", err)
	}
	if again != id {
		t.Errorf("SaveRun() returned id %q, expected %q", again, id)
	}

	runs, err := store.TopRuns("alice", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Score != 340 || runs[0].ContinuesUsed != 1 {
		t.Errorf("run not updated: %+v", runs[0])
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{Player: "alice", Score: 100, Coins: 4}) //nolint:errcheck
	store.SaveRun(RunRecord{Player: "alice", Score: 300, Coins: 6}) //nolint:errcheck
	store.SaveRun(RunRecord{Player: "bob", Score: 999})             //nolint:errcheck

	stats, err := store.Stats("alice")
	if err != nil {
		t.Fatalf("Stats(alice) failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalCoins != 10 {
		t.Errorf("TotalCoins = %d, expected 10", stats.TotalCoins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Player: "alice", Score: 1}) //nolint:errcheck
	store.SaveRun(RunRecord{Player: "bob", Score: 2})   //nolint:errcheck

	if err := store.ClearRuns("alice"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("", 10)
	if len(runs) != 1 || runs[0].Player != "bob" {
		t.Errorf("ClearRuns(alice) should leave only bob, got %+v", runs)
	}
}
