package repository

import "authportal/models"

// UserRepository defines the interface for credential store operations.
// Lookup methods return (nil, nil) when no user matches, so callers can tell
// absence apart from a store failure.
type UserRepository interface {
	// CreateUser persists a new user and assigns its identifier.
	CreateUser(user *models.User) error
	// GetUserByEmailOrUsername finds any user whose email or username
	// matches. Used by the signup uniqueness check.
	GetUserByEmailOrUsername(email, username string) (*models.User, error)
	// GetUserByUsername finds a user for login. The lookup is bounded by a
	// maximum query duration so a slow store surfaces as an error rather
	// than hanging the request.
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	// GetProfileByID returns the name+email projection of a single user.
	GetProfileByID(id string) (*models.Profile, error)
	// GetAllProfiles returns the name+email projection of every user.
	GetAllProfiles() ([]models.Profile, error)
}
