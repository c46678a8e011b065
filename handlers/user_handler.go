package handlers

import (
	"encoding/json"
	"net/http"

	"authportal/logger"
	"authportal/models"
	"authportal/repository"
	"authportal/token"

	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Signer *token.Signer
}

// Signup handler
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Message: "Invalid request method",
		})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Name, email, username, and password are required",
		})
		return
	}

	// Uniqueness check and insert are not atomic; two concurrent signups
	// with the same username can race past this check.
	existing, err := h.Repo.GetUserByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		logger.Errorf("signup: uniqueness check failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Email or username already exists",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Errorf("signup: hashing failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		IsAdmin:  false,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		logger.Errorf("signup: create user failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	tok, err := h.Signer.Sign(user.ID)
	if err != nil {
		logger.Errorf("signup: token signing failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Message: "User created",
		Token:   tok,
	})
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Message: "Invalid request method",
		})
		return
	}

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	// A store failure (including the bounded lookup timing out) is a server
	// error, never reported as bad credentials.
	user, err := h.Repo.GetUserByUsername(creds.Username)
	if err != nil {
		logger.Errorf("login: user lookup failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Unknown username and wrong password produce identical responses so the
	// caller cannot probe which usernames exist.
	if user == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid credentials",
		})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid credentials",
		})
		return
	}

	tok, err := h.Signer.Sign(user.ID)
	if err != nil {
		logger.Errorf("login: token signing failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: tok})
}
