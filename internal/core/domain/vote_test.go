package domain

import (
	"testing"
	"time"
)

func TestNormalizeDayMeal(t *testing.T) {
	if d := NormalizeDay("  MONDAY "); d != Monday {
		t.Fatalf("expected monday, got %q", d)
	}
	if m := NormalizeMeal("Lunch"); m != Lunch {
		t.Fatalf("expected lunch, got %q", m)
	}
	if NormalizeDay("funday").Valid() {
		t.Fatalf("funday must not validate")
	}
	if NormalizeMeal("brunch").Valid() {
		t.Fatalf("brunch must not validate")
	}
}

func TestUrgencyRank(t *testing.T) {
	order := []Urgency{UrgencyUrgent, UrgencyHigh, UrgencyMedium, UrgencyLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Fatalf("%s must rank before %s", order[i-1], order[i])
		}
	}
	if Urgency("bogus").Rank() <= UrgencyLow.Rank() {
		t.Fatalf("unknown urgency must sort last")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now}
	if s.Expired(now) {
		t.Fatalf("session is valid exactly at its expiry instant")
	}
	if !s.Expired(now.Add(time.Nanosecond)) {
		t.Fatalf("session must expire after its expiry instant")
	}
}
