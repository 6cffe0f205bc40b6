// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"TrendZone/app/common/consts/errno"
	"TrendZone/app/common/response"
	"TrendZone/app/services/clerk/internal/logic"
	"TrendZone/app/services/clerk/internal/svc"
	"TrendZone/app/services/clerk/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ChatHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewChatLogic(r.Context(), svcCtx)
		data, err := l.Chat(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w,
				response.NewResponseWithData(errno.StatusOK, "success", data))
		}
	}
}
