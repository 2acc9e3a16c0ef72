package domain

import "time"

// Admin models an administrator principal. Password bytes never leave the
// auth service; the stored hash is bcrypt (salt embedded, per-password).
type Admin struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	Active       bool      `json:"is_active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	LastLogin    time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// Session is a server-side bearer session. A session is valid exactly while
// now <= ExpiresAt; expired and revoked sessions are indistinguishable to the
// validator (both are simply absent).
type Session struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AdminID   string    `json:"admin_id" bson:"admin_id"`
	Token     string    `json:"token" bson:"token"`
	IssuedAt  time.Time `json:"created_at" bson:"issued_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	IPAddress string    `json:"ip_address" bson:"ip_address"`
}

// Expired reports whether the session's TTL has passed at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
