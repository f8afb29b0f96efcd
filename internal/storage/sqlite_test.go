package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreSaveAndRetrieveSessions(t *testing.T) {
	store := openTestStore(t)

	saved := Session{
		GameID:     "daynight",
		DayCells:   47,
		NightCells: 53,
		Ticks:      3600,
		Flips:      12,
		DurationMs: 60000,
		FinalState: `{"cols":10}`,
	}
	if _, err := store.SaveSession(saved); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{GameID: "daynight", DayCells: 50, NightCells: 50, Flips: 3}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	// Different game should not show up below
	if _, err := store.SaveSession(Session{GameID: "other", DayCells: 1, NightCells: 1}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions("daynight", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Flips != 3 {
		t.Errorf("Expected the latest session first, got flips=%d", sessions[0].Flips)
	}
	if sessions[1].DayCells != 47 || sessions[1].NightCells != 53 {
		t.Errorf("Expected 47/53 territory, got %d/%d", sessions[1].DayCells, sessions[1].NightCells)
	}
	if sessions[1].FinalState != `{"cols":10}` {
		t.Errorf("Expected stored final state to round-trip, got %q", sessions[1].FinalState)
	}
	if sessions[0].FinalState != "" {
		t.Errorf("Expected empty final state to stay empty, got %q", sessions[0].FinalState)
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(Session{GameID: "daynight", DayCells: 50 - i, NightCells: 50 + i, Flips: i}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions("daynight", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Flips != 4 || sessions[1].Flips != 3 || sessions[2].Flips != 2 {
		t.Errorf("Sessions not in newest-first order: %d, %d, %d",
			sessions[0].Flips, sessions[1].Flips, sessions[2].Flips)
	}
}

func TestStoreLastSession(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	last, err := store.LastSession("daynight")
	if err != nil {
		t.Fatalf("LastSession() failed: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for an empty game, got %+v", last)
	}

	store.SaveSession(Session{GameID: "daynight", DayCells: 50, NightCells: 50, Flips: 1})
	store.SaveSession(Session{GameID: "daynight", DayCells: 48, NightCells: 52, Flips: 9})

	last, err = store.LastSession("daynight")
	if err != nil {
		t.Fatalf("LastSession() failed: %v", err)
	}
	if last == nil || last.Flips != 9 {
		t.Errorf("Expected the flips=9 session, got %+v", last)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty game gives zeroed stats
	stats, err := store.Stats("daynight")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.SessionsCount != 0 || stats.TotalFlips != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSession(Session{GameID: "daynight", DayCells: 50, NightCells: 50, Flips: 10, DurationMs: 1000})
	store.SaveSession(Session{GameID: "daynight", DayCells: 45, NightCells: 55, Flips: 30, DurationMs: 3000})

	stats, err = store.Stats("daynight")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.SessionsCount != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.SessionsCount)
	}
	if stats.TotalFlips != 40 {
		t.Errorf("Expected 40 total flips, got %d", stats.TotalFlips)
	}
	if stats.MaxFlips != 30 {
		t.Errorf("Expected max 30 flips, got %d", stats.MaxFlips)
	}
	if stats.AvgFlips != 20 {
		t.Errorf("Expected average of 20 flips, got %v", stats.AvgFlips)
	}
	if stats.TotalPlayMs != 4000 {
		t.Errorf("Expected 4000ms of play, got %d", stats.TotalPlayMs)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set after saving sessions")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "daynight", DayCells: 50, NightCells: 50})
	store.SaveSession(Session{GameID: "daynight", DayCells: 49, NightCells: 51})
	store.SaveSession(Session{GameID: "other", DayCells: 1, NightCells: 1})

	if err := store.ClearSessions("daynight"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, _ := store.RecentSessions("daynight", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}

	// Other games should not be affected
	otherSessions, _ := store.RecentSessions("other", 10)
	if len(otherSessions) != 1 {
		t.Errorf("Other game's sessions should survive the clear")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
