package entitlement

import "context"

// StaticGate is a config-driven entitlement adapter. Production deploys
// swap in the billing service behind the same port; the pipeline only ever
// sees allow/deny.
type StaticGate struct {
	allowAnonymous bool
}

// NewStaticGate creates the gate.
func NewStaticGate(allowAnonymous bool) *StaticGate {
	return &StaticGate{allowAnonymous: allowAnonymous}
}

// AllowDeepDive permits any identified user, and anonymous users only when
// configured to.
func (g *StaticGate) AllowDeepDive(_ context.Context, userID string) (bool, error) {
	if userID == "" {
		return g.allowAnonymous, nil
	}
	return true, nil
}
