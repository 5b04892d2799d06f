package venture

import "testing"

func TestSubjectKey_Stable(t *testing.T) {
	idea := Idea{Name: "Compost Collective", Tagline: "changes between calls"}
	profile := FounderProfile{VentureType: "business", CauseAreas: []string{"climate", "community"}}

	first := SubjectKey(idea, profile)
	second := SubjectKey(idea, profile)
	if first != second {
		t.Fatalf("subject key must be deterministic: %q vs %q", first, second)
	}
	if first != "compost collective|business|climate,community" {
		t.Fatalf("unexpected subject key %q", first)
	}
}

func TestSubjectKey_CauseOrderInsensitive(t *testing.T) {
	idea := Idea{Name: "Compost Collective"}
	a := FounderProfile{VentureType: "business", CauseAreas: []string{"community", "climate"}}
	b := FounderProfile{VentureType: "business", CauseAreas: []string{"climate", "community"}}

	if SubjectKey(idea, a) != SubjectKey(idea, b) {
		t.Fatal("cause area ordering must not change the subject key")
	}
}

func TestSubjectKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := SubjectKey(Idea{Name: "  Compost Collective "}, FounderProfile{VentureType: "Business", CauseAreas: []string{" Climate "}})
	b := SubjectKey(Idea{Name: "compost collective"}, FounderProfile{VentureType: "business", CauseAreas: []string{"climate"}})
	if a != b {
		t.Fatalf("key must normalize case and whitespace: %q vs %q", a, b)
	}
}

func TestSubjectKey_IgnoresNonIdentityFields(t *testing.T) {
	idea := Idea{Name: "Compost Collective"}
	a := FounderProfile{VentureType: "business", CauseAreas: []string{"climate"}, DeliveryFormat: "in_person", Location: "Austin", Commitment: CommitmentFullTime}
	b := FounderProfile{VentureType: "business", CauseAreas: []string{"climate"}}

	if SubjectKey(idea, a) != SubjectKey(idea, b) {
		t.Fatal("delivery format, location, and commitment must not affect the key")
	}
}

func TestCommitmentTier_Normalize(t *testing.T) {
	cases := []struct {
		in   CommitmentTier
		want CommitmentTier
	}{
		{"full_time", CommitmentFullTime},
		{" Full_Time ", CommitmentFullTime},
		{"side_hustle", CommitmentSideHustle},
		{"exploring", CommitmentExploring},
		{"", CommitmentExploring},
		{"weekends only", CommitmentExploring},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrimaryCause(t *testing.T) {
	if got := (FounderProfile{}).PrimaryCause(); got != "" {
		t.Fatalf("empty profile should have no primary cause, got %q", got)
	}
	p := FounderProfile{CauseAreas: []string{"education", "climate"}}
	if got := p.PrimaryCause(); got != "education" {
		t.Fatalf("primary cause = %q, want education", got)
	}
}
