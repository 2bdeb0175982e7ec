package domain

// User is the part of an account this service reads. Accounts are created
// and authenticated elsewhere.
type User struct {
	ID       string
	Username string
}
