package catalog

import (
	"context"
	"errors"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/postgres"
	"github.com/jackc/pgx/v5"
)

const productColumns = `ProductID, ProductName, Description, Price, Category, StockQuantity,
       Manufacturer, ReleaseDate, ImageURL`

type Repo struct{ DB postgres.Querier }

func (r *Repo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, `SELECT DISTINCT Category FROM Products ORDER BY Category`)
	if err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	return out, nil
}

// ListProducts returns every product, or only those whose category equals
// category when it is non-empty.
func (r *Repo) ListProducts(ctx context.Context, category string) ([]ProductSummary, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = r.DB.Query(ctx, `SELECT ProductID, ProductName, Price FROM Products ORDER BY ProductID`)
	} else {
		rows, err = r.DB.Query(ctx, `SELECT ProductID, ProductName, Price FROM Products
                                     WHERE Category = $1 ORDER BY ProductID`, category)
	}
	if err != nil {
		return nil, apperr.Storage("list products", err)
	}
	defer rows.Close()

	out := []ProductSummary{}
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, apperr.Storage("list products", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list products", err)
	}
	return out, nil
}

func (r *Repo) GetProduct(ctx context.Context, id int64) (Product, bool, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM Products WHERE ProductID = $1`, id)
	return scanProduct(row)
}

// RandomProduct samples one product uniformly at call time.
func (r *Repo) RandomProduct(ctx context.Context) (Product, bool, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM Products ORDER BY random() LIMIT 1`)
	return scanProduct(row)
}

func scanProduct(row pgx.Row) (Product, bool, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity,
		&p.Manufacturer, &p.ReleaseDate, &p.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, apperr.Storage("read product", err)
	}
	return p, true, nil
}

func (r *Repo) AddProduct(ctx context.Context, p NewProduct) (int64, error) {
	if p.Name == "" {
		return 0, apperr.Validation("product name is required")
	}
	if p.Price.IsNegative() {
		return 0, apperr.Validation("price must not be negative")
	}
	if p.StockQuantity < 0 {
		return 0, apperr.Validation("stock quantity must not be negative")
	}

	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO Products (ProductName, Description, Price, Category, StockQuantity,
		                      Manufacturer, ReleaseDate, ImageURL)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ProductID`,
		p.Name, p.Description, p.Price, p.Category, p.StockQuantity,
		p.Manufacturer, p.ReleaseDate, p.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, apperr.Storage("add product", err)
	}
	return id, nil
}

// ListReviews returns a product's reviews, by rating when order is SortAsc or
// SortDesc and in insertion order otherwise.
func (r *Repo) ListReviews(ctx context.Context, productID int64, order SortOrder) (ReviewList, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT Rating, Comment, ReviewDate FROM Reviews WHERE ProductID = $1`+order.orderBy(), productID)
	if err != nil {
		return nil, apperr.Storage("list reviews", err)
	}
	defer rows.Close()

	out := ReviewList{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.Rating, &rv.Comment, &rv.ReviewDate); err != nil {
			return nil, apperr.Storage("list reviews", err)
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list reviews", err)
	}
	return out, nil
}
