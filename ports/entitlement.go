package ports

import "context"

// EntitlementPort answers whether a user may run a deep dive. Billing and
// auth live behind this boundary; the pipeline only sees allow/deny.
type EntitlementPort interface {
	AllowDeepDive(ctx context.Context, userID string) (bool, error)
}
