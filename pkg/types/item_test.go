package types

import (
	"errors"
	"testing"
)

func TestItemSetStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		item := &InProgressItem{Status: StatusNotStarted}
		if err := item.SetStatus(StatusInReview); err != nil {
			t.Fatal(err)
		}
		if item.Status != StatusInReview {
			t.Fatalf("expected %s, got %s", StatusInReview, item.Status)
		}
	})

	t.Run("setting current status is idempotent", func(t *testing.T) {
		item := &InProgressItem{Status: StatusInProgress}
		if err := item.SetStatus(StatusInProgress); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		item := &InProgressItem{Status: StatusNotStarted}
		err := item.SetStatus("done")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if item.Status != StatusNotStarted {
			t.Fatal("status must be unchanged after rejected set")
		}
	})
}

func TestValidUrgency(t *testing.T) {
	for _, u := range []string{UrgencyLow, UrgencyMedium, UrgencyHigh} {
		if !ValidUrgency(u) {
			t.Fatalf("expected %q to be valid", u)
		}
	}
	if ValidUrgency("critical") {
		t.Fatal("unknown urgency must be invalid")
	}
}
