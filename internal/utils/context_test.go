package utils

import (
	"context"
	"testing"

	"github.com/openshelf/catalog/models"
)

func TestGetCurrentUserFromContext(t *testing.T) {
	user := models.User{ID: "user-id", Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, user)

	got, ok := GetCurrentUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be present in context")
	}
	if got.ID != user.ID || got.Role != user.Role {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestGetCurrentUserFromContext_Missing(t *testing.T) {
	_, ok := GetCurrentUserFromContext(context.Background())
	if ok {
		t.Fatal("expected no user in an empty context")
	}
}

func TestGetCurrentUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "not-a-user")

	_, ok := GetCurrentUserFromContext(ctx)
	if ok {
		t.Fatal("expected type mismatch to report absence")
	}
}
