package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/utils"
)

const apiKeyHeader = "X-API-KEY"

// requireAPIKey guards the catalog write endpoints with a static shared key
// passed in the X-API-KEY header. The comparison is constant-time.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		providedKey := r.Header.Get(apiKeyHeader)
		if providedKey == "" || h.apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(providedKey), []byte(h.apiKey)) != 1 {
			log.Warn().Msg("catalog write rejected: invalid or missing API key")
			utils.WriteError(w, "Invalid or missing API key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
