package api

import (
	"net/http"

	"github.com/workshop-app/workshop-api/internal/api/shared"
)

const (
	welcomeMessage = "Welcome to the WorkShop Backend API!"
	helloContent   = "Hello from the WorkShop Go backend!"
)

// Root handles GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: welcomeMessage})
}

// Message handles GET /api/message.
func Message(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ContentResponse{Content: helloContent})
}
