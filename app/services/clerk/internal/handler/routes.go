// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"TrendZone/app/services/clerk/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.IdentityMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/clerk/chat",
					Handler: ChatHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/clerk/reset",
					Handler: ResetHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/clerk/context",
					Handler: ContextHandler(serverCtx),
				},
			}...,
		),
	)
}
