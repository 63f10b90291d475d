package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

// BusinessIDHeader заголовок с UUID бизнеса для административных маршрутов
const BusinessIDHeader = "X-Business-ID"

const (
	msgMissingBusinessID = "заголовок X-Business-ID обязателен"
	msgInvalidBusinessID = "X-Business-ID должен быть UUID"
)

type businessIDKey struct{}

// Tenant достает идентификатор бизнеса из заголовка и кладет его в контекст
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(BusinessIDHeader))
		if raw == "" {
			handlers.RespondBadRequest(w, msgMissingBusinessID)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidBusinessID)
			return
		}

		ctx := WithBusinessID(r.Context(), id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithBusinessID кладет идентификатор бизнеса в контекст
func WithBusinessID(ctx context.Context, businessID string) context.Context {
	return context.WithValue(ctx, businessIDKey{}, businessID)
}

// BusinessIDFromContext достает идентификатор бизнеса, положенный Tenant
func BusinessIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(businessIDKey{}).(string)
	return id, ok && id != ""
}
