package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const msgForbidden = "доступ только для администратора"

// AdminOnly пропускает только пользователей из списка администраторов
// Вешается поверх Auth: идентификатор уже лежит в контексте
func AdminOnly(adminIDs []int64) mux.MiddlewareFunc {
	allowed := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		allowed[id] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok || !allowed[userID] {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   msgForbidden,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
