package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/utils"
)

// auth admits requests carrying a bearer token this server issued for a
// user that still exists, and stores the user id in the request context
// under [utils.UserIDCtxKey]. Everything else is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		userID, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, tokenIssuer)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		if _, err = h.repo.User(ctx, userID); err != nil {
			writeError(w, r, fmt.Errorf("%w: token owner: %v", ErrInvalidAuthorizationHeader, err))
			return
		}

		logger.FromContext(ctx).Debug().Str("user_id", userID.String()).Msg("request authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}
