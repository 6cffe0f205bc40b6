package logic

import (
	"context"

	"TrendZone/app/common/consts/errno"
	"TrendZone/app/common/util"
	"TrendZone/app/services/clerk/internal/svc"
	"TrendZone/app/services/clerk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ContextLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewContextLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ContextLogic {
	return &ContextLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Context returns a debug view of a session's conversation memory plus the
// size of the inventory snapshot.
func (l *ContextLogic) Context(req *types.ContextReq) (*types.ContextData, error) {
	if req.SessionId == "" {
		return nil, errors.New(errno.InvalidParam, "session_id is required")
	}

	userId := util.OptionalUserId(l.ctx)
	activityCount, err := l.svcCtx.ActivitiesModel.CountForSession(l.ctx, req.SessionId, userId)
	if err != nil {
		l.Errorw("counting session activity failed", logx.Field("err", err))
	}

	snap := l.svcCtx.Clerk.Sessions().Get(req.SessionId).Snapshot()
	return &types.ContextData{
		InventoryCount:     len(l.svcCtx.Clerk.Inventory().Snapshot(l.ctx)),
		ActivityCount:      activityCount,
		PendingSizeProduct: snap.PendingSizeProduct,
		LastShown:          snap.LastShownNames,
		LastQuery:          snap.LastQuery,
		LastCategory:       snap.LastCategory,
		Topics:             snap.Topics,
	}, nil
}
