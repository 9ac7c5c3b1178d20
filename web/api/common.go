package api

import (
	"net/http"

	"github.com/rohanthewiz/rweb"
)

// APIResponse provides a consistent JSON response structure for all API
// endpoints. Success responses include data, error responses include an
// error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// requireEditor rejects the request with 401 unless JWTAuthMiddleware
// marked it authenticated. Returns false when the request was rejected.
func requireEditor(ctx rweb.Context) (ok bool, err error) {
	authenticated, _ := ctx.Get("authenticated").(bool)
	if !authenticated {
		return false, writeError(ctx, http.StatusUnauthorized, "authentication required")
	}
	return true, nil
}

// HealthCheck returns the health status of the application
func HealthCheck(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "docsite",
		"version": "1.0.0",
	})
}
