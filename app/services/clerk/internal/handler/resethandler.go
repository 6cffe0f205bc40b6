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

func ResetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResetReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewResetLogic(r.Context(), svcCtx)
		if err := l.Reset(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w,
				response.NewResponse(errno.StatusOK, "success"))
		}
	}
}
