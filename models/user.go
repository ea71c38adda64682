package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Preferences is the free-form travel preference bag on an account.
type Preferences struct {
	TravelStyle  string   `json:"travel_style,omitempty" bson:"travel_style,omitempty"`
	Budget       float64  `json:"budget,omitempty" bson:"budget,omitempty"`
	Destinations []string `json:"destinations,omitempty" bson:"destinations,omitempty"`
}

type User struct {
	UserID       string      `json:"userid" bson:"userid"`
	Username     string      `json:"username" bson:"username"`
	Email        string      `json:"email" bson:"email"`
	PasswordHash string      `json:"-" bson:"password_hash"`
	Role         string      `json:"role" bson:"role"`
	FirstName    string      `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string      `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Preferences  Preferences `json:"preferences" bson:"preferences"`
	Avatar       string      `json:"avatar,omitempty" bson:"avatar,omitempty"`
	AvatarThumb  string      `json:"avatar_thumb,omitempty" bson:"avatar_thumb,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
	LastLogin    time.Time   `json:"last_login" bson:"last_login"`

	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// Requester is the authenticated identity handed to every domain operation.
// It is a plain capability token: the domain packages trust it and never read
// session state of their own.
type Requester struct {
	UserID string
	Role   string
}

func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}
