package handler

import "net/http"

type welcomeResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Welcome serves the API index document at the root path.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "Welcome to Storefront API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"users":      "/users",
			"products":   "/products",
			"categories": "/categories",
			"health":     "/health",
		},
	})
}
