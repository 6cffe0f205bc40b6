package util

import (
	"context"
	"net/http"

	"TrendZone/app/common/consts/biz"
	"TrendZone/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New(int(errno.TokenEmpty), "missing context")
	}

	switch val := ctx.Value(biz.USER_KEY).(type) {
	case int64:
		return val, nil
	}

	return 0, errors.New(int(errno.TokenEmpty), "unauthorized")
}

// OptionalUserId returns the authenticated user id, or 0 for anonymous
// sessions. The clerk serves both.
func OptionalUserId(ctx context.Context) int64 {
	id, err := UserIdFromCtx(ctx)
	if err != nil {
		return 0
	}
	return id
}

func InjectUserId2Ctx(r *http.Request, userId int64) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	*r = *r.WithContext(ctx)
}
