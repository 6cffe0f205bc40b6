package logic

import (
	"context"
	"strings"

	"TrendZone/app/common/consts/errno"
	"TrendZone/app/common/util"
	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/svc"
	"TrendZone/app/services/clerk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatReq) (*types.ChatData, error) {
	if req.SessionId == "" || strings.TrimSpace(req.Message) == "" {
		return nil, errors.New(errno.InvalidParam, "session_id and message are required")
	}

	userId := util.OptionalUserId(l.ctx)
	resp := l.svcCtx.Clerk.HandleTurn(l.ctx, req.SessionId, userId, req.Message)

	return &types.ChatData{
		Message:  resp.Message,
		Products: toProductViews(resp.Products),
		Action:   resp.Action,
	}, nil
}

func toProductViews(products []catalog.Product) []types.ProductView {
	if len(products) == 0 {
		return nil
	}
	views := make([]types.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, types.ProductView{
			Id:          p.Id,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			Sizes:       p.Sizes,
			Colors:      p.Colors,
			Stock:       p.Stock,
			ImageUrl:    p.ImageUrl,
		})
	}
	return views
}
