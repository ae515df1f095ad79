package db

import "testing"

func TestPendingMigrations_SkipsApplied(t *testing.T) {
	pending, err := pendingMigrations(map[string]struct{}{"0001_init.sql": {}})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range pending {
		if name == "0001_init.sql" {
			t.Fatal("already-applied migration must not be pending")
		}
	}
}

func TestPendingMigrations_OrderedFreshRun(t *testing.T) {
	pending, err := pendingMigrations(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) == 0 {
		t.Fatal("expected at least the initial migration")
	}
	if pending[0] != "0001_init.sql" {
		t.Fatalf("initial migration must run first, got %v", pending)
	}
	for i := 1; i < len(pending); i++ {
		if pending[i-1] >= pending[i] {
			t.Fatalf("migrations out of order: %v", pending)
		}
	}
}
