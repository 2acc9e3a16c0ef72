package domain

import "testing"

func TestDeriveIdentity_Deterministic(t *testing.T) {
	a := DeriveIdentity("10.0.0.1", "Mozilla/5.0")
	b := DeriveIdentity("10.0.0.1", "Mozilla/5.0")
	if a != b {
		t.Fatalf("same inputs must derive the same identity: %s vs %s", a, b)
	}
}

func TestDeriveIdentity_Length(t *testing.T) {
	id := DeriveIdentity("10.0.0.1", "Mozilla/5.0")
	if len(id) != 32 {
		t.Fatalf("expected 32 hex chars, got %d (%s)", len(id), id)
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("non-hex character %q in %s", r, id)
		}
	}
}

func TestDeriveIdentity_DistinctInputs(t *testing.T) {
	base := DeriveIdentity("10.0.0.1", "Mozilla/5.0")
	if DeriveIdentity("10.0.0.2", "Mozilla/5.0") == base {
		t.Fatalf("different IPs must not collide")
	}
	if DeriveIdentity("10.0.0.1", "curl/8.0") == base {
		t.Fatalf("different user agents must not collide")
	}
	if DeriveIdentity("10.0.0.1", "Mozilla/5.0", "extra") == base {
		t.Fatalf("extra components must change the identity")
	}
}
