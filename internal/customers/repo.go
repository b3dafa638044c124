package customers

import (
	"context"
	"errors"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Repo struct {
	DB     postgres.Querier
	Hasher Hasher
}

// Create hashes c.Password and inserts the customer, returning its id. The
// insert is one statement, so a failure leaves no partial row behind.
func (r *Repo) Create(ctx context.Context, c NewCustomer) (int64, error) {
	if c.Username == "" {
		return 0, apperr.Validation("username is required")
	}
	if c.Password == "" {
		return 0, apperr.Validation("password is required")
	}
	hash, err := r.Hasher.Hash(c.Password)
	if err != nil {
		return 0, apperr.AsStorage("hash password", err)
	}

	var id int64
	err = r.DB.QueryRow(ctx, `
		INSERT INTO Customers (Username, PasswordHash, FirstName, LastName, Email, Phone, Address, RegistrationDate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING CustomerID`,
		c.Username, hash, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, apperr.Storage("username already taken", err)
		}
		return 0, apperr.Storage("create customer", err)
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (Customer, bool, error) {
	var c Customer
	err := r.DB.QueryRow(ctx, `
		SELECT CustomerID, Username, PasswordHash, FirstName, LastName, Email, Phone, Address, RegistrationDate
		FROM Customers WHERE CustomerID = $1`, id,
	).Scan(&c.ID, &c.Username, &c.PasswordHash, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Address, &c.RegistrationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, false, nil
	}
	if err != nil {
		return Customer{}, false, apperr.Storage("get customer", err)
	}
	return c, true, nil
}
