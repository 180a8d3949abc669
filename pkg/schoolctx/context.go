// Package schoolctx carries the authenticated caller's identity through request contexts.
package schoolctx

import "context"

type keyType string

const (
	userIDKey   keyType = "user_id"
	schoolIDKey keyType = "school_id"
	roleKey     keyType = "role"
)

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func WithSchoolID(ctx context.Context, schoolID string) context.Context {
	return context.WithValue(ctx, schoolIDKey, schoolID)
}

func SchoolID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(schoolIDKey).(string)
	return id, ok && id != ""
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func Role(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok && role != ""
}
