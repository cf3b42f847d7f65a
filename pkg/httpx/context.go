package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's ID. The authn middleware in
// the API layer populates it; the user-keyed rate limiter reads it.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user ID, or "" when the
// request is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ContextWithUserID attaches the authenticated user ID.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
