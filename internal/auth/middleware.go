package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/SamratSK/better-bites/internal/api/respond"
)

// Middleware authenticates every request and stores the actor on the request
// context. Unauthenticated requests get a 401.
func Middleware(az Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractBearerToken(r)
			if err != nil {
				respond.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}
			actor, err := az.Authorize(r.Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
				respond.WriteError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
