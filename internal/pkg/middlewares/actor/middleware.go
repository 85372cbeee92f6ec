package actor

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	actorservice "freight/internal/service/actor"
	"freight/pkg/logger"
)

// HeaderUserID - идентификатор вызывающего, проставляется шлюзом после аутентификации.
const HeaderUserID = "X-User-Id"

type ctxKey struct{}

// Middleware резолвит актора по заголовку и кладет его в контекст запроса.
// Запрос без валидного актора до хендлеров не доходит.
func Middleware(log handlerLogger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(HeaderUserID)
			if userIDStr == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actorEntity, err := resolver.Resolve(r.Context(), userID)
			if err != nil {
				switch {
				case errors.Is(err, actorservice.ErrUserNotFound),
					errors.Is(err, actorservice.ErrInvalidUserID):
					w.WriteHeader(http.StatusUnauthorized)
				default:
					log.With(
						logger.NewField("error", err),
					).Error("resolve request actor")
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, *actorEntity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext достает актора, положенного Middleware.
func FromContext(ctx context.Context) (entities.Actor, bool) {
	actorEntity, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actorEntity, ok
}

// NewContext используется в тестах хендлеров для подстановки актора.
func NewContext(ctx context.Context, actorEntity entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actorEntity)
}
