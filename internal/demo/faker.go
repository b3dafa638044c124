package demo

import (
	"strings"
	"time"

	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var (
	Categories = []string{"Electronics", "Clothing", "Furniture", "Toys", "Sports", "Home", "Shoes",
		"Jewelry", "Appliances"}
	Manufacturers = []string{"Sony", "Samsung", "Apple", "Nike", "Adidas", "Ford", "Toyota", "Honda",
		"LG", "Microsoft", "Panasonic", "Audi", "Dell", "Lenovo", "Philips", "Puma", "New Balance"}
)

// Faker generates demo customers and products.
type Faker struct {
	f   *gofakeit.Faker
	now func() time.Time
}

func NewFaker(seed uint64) *Faker {
	return &Faker{f: gofakeit.New(seed), now: time.Now}
}

func (g *Faker) Customer() customers.NewCustomer {
	return customers.NewCustomer{
		Username:  g.f.Username(),
		Password:  g.f.Password(true, true, true, false, false, 8),
		FirstName: g.f.FirstName(),
		LastName:  g.f.LastName(),
		Email:     g.f.Email(),
		Phone:     g.f.Phone(),
		Address:   g.f.Address().Address,
	}
}

// Product draws a price in [10, 1000], stock in [1, 1000] and a release date
// within the last two years.
func (g *Faker) Product() catalog.NewProduct {
	now := g.now().UTC()
	release := g.f.DateRange(now.AddDate(-2, 0, 0), now)
	return catalog.NewProduct{
		Name:          strings.ToLower(g.f.ProductName()),
		Description:   g.f.Sentence(8),
		Price:         decimal.NewFromFloat(g.f.Price(10, 1000)).Round(2),
		Category:      g.f.RandomString(Categories),
		StockQuantity: g.f.IntRange(1, 1000),
		Manufacturer:  g.f.RandomString(Manufacturers),
		ReleaseDate:   time.Date(release.Year(), release.Month(), release.Day(), 0, 0, 0, 0, time.UTC),
		ImageURL:      g.f.URL(),
	}
}
