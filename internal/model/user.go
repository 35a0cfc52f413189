package model

// UserAccount is one Users_DB row. Passwords are whatever the sheet
// stores; comparison lives in internal/pkg/crypto.
type UserAccount struct {
	Username string
	Password string
	Status   string // must be "approved" (case-insensitive) to log in
	Role     string // admin, member or user; blank defaults to user
}
