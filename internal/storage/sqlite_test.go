package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/topology"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(topo string, moves, ticks int, solved bool) Run {
	return Run{Topology: topo, Width: 4, Height: 4, Seed: 1, Bias: "none", Moves: moves, Ticks: ticks, Cells: 16, Solved: solved}
}

func mustSave(t *testing.T, s *Store, r Run) string {
	t.Helper()
	id, err := s.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id := mustSave(t, store, run("square", 3, 10, true))
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if got.Moves != 3 || !got.Solved || got.CreatedAt.IsZero() {
		t.Errorf("unexpected run after reopen: %+v", got)
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openStore(t)
	a := mustSave(t, store, run("square", 1, 1, true))
	b := mustSave(t, store, run("square", 1, 1, true))

	if a == b {
		t.Error("two runs share an id")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("id %q is not a uuid: %v", a, err)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openStore(t)
	mustSave(t, store, run("square", 2, 50, false))
	mustSave(t, store, run("square", 9, 5, true))
	mustSave(t, store, run("square", 4, 30, true))
	mustSave(t, store, run("square", 4, 20, true))
	mustSave(t, store, run("hex", 1, 1, true))

	runs, err := store.TopRuns("square", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 square runs, got %d", len(runs))
	}

	// solved first, then fewest moves, then fewest ticks
	want := [][2]int{{4, 20}, {4, 30}, {9, 5}, {2, 50}}
	for i, w := range want {
		if runs[i].Moves != w[0] || runs[i].Ticks != w[1] {
			t.Errorf("runs[%d] = %d moves / %d ticks, want %v", i, runs[i].Moves, runs[i].Ticks, w)
		}
	}
	if runs[3].Solved {
		t.Error("unsolved run should sort last")
	}

	all, _ := store.TopRuns("", 10)
	if len(all) != 5 {
		t.Errorf("Expected 5 runs across topologies, got %d", len(all))
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openStore(t)
	for i := 0; i < 5; i++ {
		mustSave(t, store, run("square", i+1, 0, true))
	}

	runs, err := store.TopRuns("square", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestRecentRuns(t *testing.T) {
	store := openStore(t)
	first := mustSave(t, store, run("square", 1, 1, true))
	last := mustSave(t, store, run("hex", 2, 2, false))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != last || runs[1].ID != first {
		t.Errorf("RecentRuns() not newest first: %+v", runs)
	}
}

func TestBestRun(t *testing.T) {
	store := openStore(t)

	best, err := store.BestRun("square")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run for an empty table, got %+v", best)
	}

	mustSave(t, store, run("square", 1, 1, false))
	id := mustSave(t, store, run("square", 7, 3, true))
	mustSave(t, store, run("square", 8, 1, true))

	best, err = store.BestRun("square")
	if err != nil || best == nil {
		t.Fatalf("BestRun() = %v, %v", best, err)
	}
	if best.ID != id {
		t.Errorf("BestRun() picked %+v", best)
	}
}

func TestClearRuns(t *testing.T) {
	store := openStore(t)
	mustSave(t, store, run("square", 1, 1, true))
	mustSave(t, store, run("square", 2, 1, true))
	mustSave(t, store, run("hex", 3, 1, true))

	if err := store.ClearRuns("square"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("square", 10); len(runs) != 0 {
		t.Errorf("Expected 0 square runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("hex", 10); len(runs) != 1 {
		t.Error("hex runs should not be affected by clearing square")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("Expected an empty table, got %d runs", len(runs))
	}
}

func TestStats(t *testing.T) {
	store := openStore(t)
	mustSave(t, store, run("square", 10, 1, true))
	mustSave(t, store, run("square", 6, 1, true))
	mustSave(t, store, run("square", 2, 1, false))
	mustSave(t, store, run("hex", 5, 1, false))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	sq := stats["square"]
	if sq == nil || sq.Runs != 3 || sq.Solved != 2 || sq.BestMoves != 6 || sq.AvgMoves != 6 {
		t.Errorf("unexpected square stats: %+v", sq)
	}
	if sq != nil && sq.LastPlayed.IsZero() {
		t.Error("LastPlayed not parsed")
	}
	if hx := stats["hex"]; hx == nil || hx.Solved != 0 || hx.BestMoves != 0 {
		t.Errorf("unexpected hex stats: %+v", hx)
	}
}

func TestNewRunFromSnapshot(t *testing.T) {
	p, err := engine.New(core.RuntimeConfig{Width: 3, Height: 2, Seed: 5}, engine.WithTopology(topology.Hex{}))
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	p.ForceSolve()

	store := openStore(t)
	id := mustSave(t, store, NewRun(p.Snapshot(), "vertical", "test"))
	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	solved := p.Snapshot().State == engine.StateSolved
	if got.Topology != "hex" || got.Cells != 6 || got.Solved != solved || got.Bias != "vertical" || got.Seed != 5 {
		t.Errorf("unexpected run %+v", got)
	}
	if got.Lit != p.LitCount() || got.Moves != p.Moves() {
		t.Errorf("statistics not copied: %+v", got)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
