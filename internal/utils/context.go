// Package utils holds the small pieces shared by the server and the client:
// the user id context key, body hashing, JSON responses, the resty client,
// JWT tokens and id generation.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the id of the token owner. The auth middleware sets it
// before any note handler runs.
var UserIDCtxKey = contextKey("userID")

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext reports false when no id, or an empty one, is set.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, _ := ctx.Value(UserIDCtxKey).(string)
	return userID, userID != ""
}
