package utils

import "context"

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsertypeKey contextKey = "usertype"
)

// SetUserContext attaches the authenticated user's id and role to the request
// context. Both come from verified token claims.
func SetUserContext(ctx context.Context, userID, usertype string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UsertypeKey, usertype)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func GetUsertypeFromContext(ctx context.Context) (string, bool) {
	usertype, ok := ctx.Value(UsertypeKey).(string)
	if !ok || usertype == "" {
		return "", false
	}
	return usertype, true
}
