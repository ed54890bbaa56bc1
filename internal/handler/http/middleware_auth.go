package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sharepoint-uploader/internal/auth"
	"github.com/MKhiriev/sharepoint-uploader/internal/logger"
	"github.com/MKhiriev/sharepoint-uploader/internal/utils"
)

// auth rejects requests without a usable bearer token with 401.
//
// The stub does not verify signatures. A token that parses as a JWT is
// rejected once its exp claim has passed, which lets the client's expired
// session handling be exercised locally. Opaque tokens are accepted as is.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		info, err := auth.Inspect(token)
		switch {
		case errors.Is(err, auth.ErrNotJWT):
			log.Debug().Msg("opaque bearer token accepted")
		case info.Expired:
			log.Err(ErrTokenExpired).Str("subject", info.Subject).Time("expires_at", info.ExpiresAt).Send()
			http.Error(w, ErrTokenExpired.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
