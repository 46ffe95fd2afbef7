package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyAdminID
	keyUsername
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithAdminID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, keyAdminID, id)
}

func GetAdminID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(keyAdminID).(int64)
	return v, ok
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, keyUsername, username)
}

func GetUsername(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUsername).(string)
	return v, ok
}
