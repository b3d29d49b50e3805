package sqlite_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/example/vouch/internal/adapters/sqlite"
	"github.com/example/vouch/internal/ports/secondary"
)

// Racing finalizes contend on one conditional UPDATE; exactly one caller
// may observe won=true.
func TestFinalize_ConcurrentSingleWinner(t *testing.T) {
	testDB := setupFileTestDB(t)
	repo := sqlite.NewBackgroundCheckRepository(testDB)
	ctx := context.Background()
	seedCheck(t, testDB, "origin-001", "unset")

	const writers = 8
	var wg sync.WaitGroup
	wins := make(chan string, writers)

	for i := 0; i < writers; i++ {
		status := "pass"
		if i%2 == 1 {
			status = "fail"
		}
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			won, err := repo.Finalize(ctx, "origin-001", status)
			if err != nil {
				t.Errorf("finalize error: %v", err)
				return
			}
			if won {
				wins <- status
			}
		}(status)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for status := range wins {
		winners = append(winners, status)
	}
	if len(winners) != 1 {
		t.Fatalf("expected exactly 1 winning finalize, got %d", len(winners))
	}

	record, err := repo.GetByOrigin(ctx, "origin-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.Status != winners[0] {
		t.Errorf("stored status %q does not match winner %q", record.Status, winners[0])
	}
}

// Racing slot inserts contend on the (origin, slot) primary key; exactly
// one insert lands and every loser sees the winner's row.
func TestObservationInsert_ConcurrentSingleWinner(t *testing.T) {
	testDB := setupFileTestDB(t)
	repo := sqlite.NewObservationRepository(testDB)
	ctx := context.Background()
	seedCheck(t, testDB, "origin-001", "pass")

	const writers = 8
	var wg sync.WaitGroup
	wins := make(chan string, writers)

	for i := 0; i < writers; i++ {
		author := fmt.Sprintf("reviewer-%d", i)
		wg.Add(1)
		go func(author string) {
			defer wg.Done()
			conflict, err := repo.Insert(ctx, &secondary.ObservationRecord{
				OriginID: "origin-001",
				Slot:     1,
				Date:     "2026-08-20",
				Notes:    "notes by " + author,
				AuthorID: author,
			})
			if err != nil {
				t.Errorf("insert error: %v", err)
				return
			}
			if conflict == nil {
				wins <- author
			}
		}(author)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for author := range wins {
		winners = append(winners, author)
	}
	if len(winners) != 1 {
		t.Fatalf("expected exactly 1 winning insert, got %d", len(winners))
	}

	record, err := repo.GetBySlot(ctx, "origin-001", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.AuthorID != winners[0] {
		t.Errorf("stored author %q does not match winner %q", record.AuthorID, winners[0])
	}
}

// Racing poll-mirror claims contend on the origin primary key; exactly one
// claim succeeds, so at most one mirror is ever posted.
func TestClaimPollMirror_ConcurrentSingleWinner(t *testing.T) {
	testDB := setupFileTestDB(t)
	repo := sqlite.NewReplicaRepository(testDB)
	ctx := context.Background()
	seedCheck(t, testDB, "origin-001", "pass")

	const claimers = 8
	var wg sync.WaitGroup
	wins := make(chan string, claimers)

	for i := 0; i < claimers; i++ {
		actor := fmt.Sprintf("reviewer-%d", i)
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			won, err := repo.ClaimPollMirror(ctx, "origin-001", actor)
			if err != nil {
				t.Errorf("claim error: %v", err)
				return
			}
			if won {
				wins <- actor
			}
		}(actor)
	}
	wg.Wait()
	close(wins)

	if len(wins) != 1 {
		t.Fatalf("expected exactly 1 winning claim, got %d", len(wins))
	}
}
