package http

import (
	"net/http"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/utils"
)

// requireAdmin rejects the request with 403 unless the authenticated user
// carries the admin role. It must run after the auth middleware, which places
// the user in the request context.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		currentUser, ok := utils.GetCurrentUserFromContext(r.Context())
		if !ok {
			log.Error().Msg("admin check reached without a user in context")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !currentUser.IsAdmin() {
			log.Warn().Str("user_id", currentUser.ID).Msg("non-admin access attempt rejected")
			utils.WriteError(w, "Admin privileges required.", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
