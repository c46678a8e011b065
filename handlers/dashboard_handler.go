package handlers

import (
	"net/http"

	"authportal/logger"
	"authportal/middleware"
	"authportal/models"
	"authportal/repository"
)

type DashboardHandler struct {
	Repo repository.UserRepository
}

// Dashboard returns every user's profile to an admin caller and only the
// caller's own profile otherwise. The auth middleware has already verified
// the token and attached the claims.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.Repo.GetUserByID(claims.UserID)
	if err != nil || user == nil {
		logger.Errorf("dashboard: user lookup failed for %s: %v", claims.UserID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if user.IsAdmin {
		profiles, err := h.Repo.GetAllProfiles()
		if err != nil {
			logger.Errorf("dashboard: listing profiles failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if profiles == nil {
			profiles = []models.Profile{}
		}
		writeJSON(w, http.StatusOK, profiles)
		return
	}

	profile, err := h.Repo.GetProfileByID(user.ID)
	if err != nil || profile == nil {
		logger.Errorf("dashboard: profile lookup failed for %s: %v", user.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
