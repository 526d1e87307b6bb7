package domain

import "time"

// User models a registered account. The password hash never leaves the
// backend; the json tag on PasswordHash guards against accidental exposure.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	DietPreferences string    `json:"dietPreferences"`
	Allergies       string    `json:"allergies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NormalizeEmail applies the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return normalizeToken(email)
}
