package models

import "time"

// User is the sole entity of the system. Password always holds the bcrypt
// hash after creation, never plaintext. ID is assigned by the store backend
// and never changes.
type User struct {
	ID        string    `json:"id,omitempty" bson:"_id" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Username  string    `json:"username" bson:"username" db:"username"`
	Password  string    `json:"password,omitempty" bson:"password" db:"password_hash"`
	IsAdmin   bool      `json:"isAdmin" bson:"isAdmin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Profile is the projection of a user exposed on the dashboard: name and
// email only, never the password hash or the identifier.
type Profile struct {
	Name  string `json:"name" bson:"name" db:"name"`
	Email string `json:"email" bson:"email" db:"email"`
}
