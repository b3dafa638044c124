package customers

import "time"

type Customer struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     []byte    `json:"-"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	RegistrationDate time.Time `json:"registration_date"`
}

// NewCustomer carries the plaintext password; it is hashed before storage.
type NewCustomer struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}
