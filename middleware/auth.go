package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/Emberalive/laptop-chatbot/utils"
)

// AdminKeyMiddleware protects operational endpoints (catalog image uploads)
// with a static shared key in the X-ADMIN-KEY header.
func AdminKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := os.Getenv("ADMIN_API_KEY")
		got := r.Header.Get("X-ADMIN-KEY")
		if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
