package controller

import (
	"context"

	"github.com/sharetube/syncroom/internal/domain"
)

type contextKey int

const (
	connIdCtxKey contextKey = iota
)

func (c controller) getConnIdFromCtx(ctx context.Context) domain.ConnID {
	connId, ok := ctx.Value(connIdCtxKey).(domain.ConnID)
	if !ok {
		return ""
	}

	return connId
}
