package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adkotun/tg-memory/memory-backend/common"
	"github.com/adkotun/tg-memory/memory-backend/responses"
	"github.com/adkotun/tg-memory/memory-backend/session"
	"github.com/adkotun/tg-memory/memory-backend/utils"
)

// SessionValidation parses the session cookie and stores the claims in the
// request context. A missing, invalid or expired token is one and the same
// failure: not authenticated.
func SessionValidation(codec *session.Codec) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				utils.HandleError(w, responses.UnauthorizedError{Msg: "No session found. Please log in."})
				return
			}

			authInfo, err := codec.Parse(cookie.Value)
			if err != nil {
				utils.HandleError(w, responses.UnauthorizedError{Msg: "Your session is invalid or expired. Please log in again."})
				return
			}

			// Store the claims in the context
			ctx := context.WithValue(r.Context(), common.AuthInfoKey, authInfo)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
