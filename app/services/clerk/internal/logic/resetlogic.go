package logic

import (
	"context"

	"TrendZone/app/common/consts/errno"
	"TrendZone/app/services/clerk/internal/svc"
	"TrendZone/app/services/clerk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ResetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetLogic {
	return &ResetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResetLogic) Reset(req *types.ResetReq) error {
	if req.SessionId == "" {
		return errors.New(errno.InvalidParam, "session_id is required")
	}
	l.svcCtx.Clerk.Sessions().Drop(req.SessionId)
	l.Infow("conversation reset", logx.Field("session_id", req.SessionId))
	return nil
}
