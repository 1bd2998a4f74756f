package context

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
)

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetSession(ctx context.Context) (*model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	session, ok := v.(*model.Session)
	return session, ok
}
