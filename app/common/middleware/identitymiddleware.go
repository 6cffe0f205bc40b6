package middleware

import (
	"net/http"

	"TrendZone/app/common/consts/biz"
	"TrendZone/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/core/logx"
)

// IdentityMiddleware resolves an optional authenticated user from the access
// token. The clerk endpoints work anonymously, so a missing or expired token
// is not an error; it only means activity-based recommendations and cart
// attribution fall back to the session id.
type IdentityMiddleware struct {
	secret []byte
}

func NewIdentityMiddleware(secret string) *IdentityMiddleware {
	return &IdentityMiddleware{secret: []byte(secret)}
}

type tokenClaims struct {
	UserId int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func (m *IdentityMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.ACCESSTOKEN); headerToken != "" {
			accessToken = headerToken
		}

		if accessToken == "" || len(m.secret) == 0 {
			next(w, r)
			return
		}

		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid || claims.UserId == 0 {
			logx.WithContext(r.Context()).Infow("clerk request carries unusable token, serving anonymously")
			next(w, r)
			return
		}

		util.InjectUserId2Ctx(r, claims.UserId)
		next(w, r)
	}
}
