// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The openshelf authors

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/openshelf/catalog/internal/logger"
	"github.com/openshelf/catalog/internal/service"
	"github.com/openshelf/catalog/internal/store"
	"github.com/openshelf/catalog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the token
// subject against the user store, and — on success — stores the full user
// record in the request context under [utils.CurrentUserCtxKey] before
// delegating to the next handler.
//
// The role used by downstream authorization checks comes from the store, not
// from the token's role claim, so a role change takes effect on the next
// request rather than at the next token refresh.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, the token is expired or invalid, the subject is not
// a well-formed user id, or the account behind the subject no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrMalformedAuthorizationHeader).Send()
			utils.WriteError(w, "Malformed Authorization header", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, "Token has expired", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, "Invalid token. Please log in again.", http.StatusUnauthorized)
				return
			}
		}

		if token.UserID == "" {
			utils.WriteError(w, "Token missing subject (sub) claim", http.StatusUnauthorized)
			return
		}
		if _, err := uuid.Parse(token.UserID); err != nil {
			log.Err(err).Msg("token subject is not a well-formed user id")
			utils.WriteError(w, "Invalid user id in token", http.StatusUnauthorized)
			return
		}

		currentUser, err := h.services.AuthService.UserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Str("user_id", token.UserID).Msg("token subject no longer exists")
				utils.WriteError(w, "User not found", http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("user lookup failed during authentication")
			status := statusFromError(err)
			utils.WriteError(w, http.StatusText(status), status)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without another lookup.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
