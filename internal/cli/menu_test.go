package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/ariefcatur/simple-shop/internal/demo"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/ariefcatur/simple-shop/internal/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShop is an in-memory stand-in for every store the menu talks to.
type fakeShop struct {
	products  map[int64]catalog.Product
	reviews   map[int64]catalog.ReviewList
	customers map[int64]customers.Customer
	details   map[int64]orders.OrderDetails
	placed    []orders.ItemInput
}

func newFakeShop() *fakeShop {
	return &fakeShop{
		products: map[int64]catalog.Product{
			1: {ID: 1, Name: "Headphones", Price: decimal.RequireFromString("9.99"), Category: "Electronics"},
			2: {ID: 2, Name: "Cable", Price: decimal.RequireFromString("5.00"), Category: "Electronics"},
		},
		reviews: map[int64]catalog.ReviewList{
			1: {{Rating: 5, Comment: "great"}, {Rating: 4, Comment: "good"}},
		},
		customers: map[int64]customers.Customer{},
		details:   map[int64]orders.OrderDetails{},
	}
}

func (f *fakeShop) ListCategories(context.Context) ([]string, error) {
	return []string{"Electronics"}, nil
}

func (f *fakeShop) ListProducts(_ context.Context, category string) ([]catalog.ProductSummary, error) {
	out := []catalog.ProductSummary{}
	for id := int64(1); id <= int64(len(f.products)); id++ {
		p := f.products[id]
		if category == "" || p.Category == category {
			out = append(out, catalog.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price})
		}
	}
	return out, nil
}

func (f *fakeShop) GetProduct(_ context.Context, id int64) (catalog.Product, bool, error) {
	p, ok := f.products[id]
	return p, ok, nil
}

func (f *fakeShop) RandomProduct(context.Context) (catalog.Product, bool, error) {
	return f.products[2], true, nil
}

func (f *fakeShop) ListReviews(_ context.Context, id int64, _ catalog.SortOrder) (catalog.ReviewList, error) {
	return f.reviews[id], nil
}

func (f *fakeShop) AddProduct(_ context.Context, np catalog.NewProduct) (int64, error) {
	id := int64(len(f.products) + 1)
	f.products[id] = catalog.Product{ID: id, Name: np.Name, Price: np.Price, Category: np.Category}
	return id, nil
}

func (f *fakeShop) Create(_ context.Context, c customers.NewCustomer) (int64, error) {
	id := int64(len(f.customers) + 1)
	f.customers[id] = customers.Customer{ID: id, Username: c.Username, PasswordHash: []byte("hash"), Email: c.Email}
	return id, nil
}

func (f *fakeShop) Get(_ context.Context, id int64) (customers.Customer, bool, error) {
	c, ok := f.customers[id]
	return c, ok, nil
}

func (f *fakeShop) CreateOrder(_ context.Context, customerID int64, items []orders.ItemInput) (orders.Receipt, error) {
	f.placed = items
	total := decimal.Zero
	d := orders.OrderDetails{Order: orders.Order{ID: 100, CustomerID: customerID, Status: orders.StatusPending}}
	for _, it := range items {
		p, ok := f.products[it.ProductID]
		if !ok {
			return orders.Receipt{}, apperr.NotFound("product %d not found", it.ProductID)
		}
		line := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
		d.Items = append(d.Items, orders.LineItem{ProductID: p.ID, ProductName: p.Name, Quantity: it.Quantity, ItemPrice: line})
	}
	d.TotalAmount = total
	f.details[100] = d
	return orders.Receipt{OrderID: 100, CustomerID: customerID, TotalAmount: total}, nil
}

func (f *fakeShop) GetOrderDetails(_ context.Context, id int64) (orders.OrderDetails, bool, error) {
	d, ok := f.details[id]
	return d, ok, nil
}

func (f *fakeShop) CustomerOrders(_ context.Context, customerID int64) ([]orders.Order, error) {
	out := []orders.Order{}
	for _, d := range f.details {
		if d.CustomerID == customerID {
			out = append(out, d.Order)
		}
	}
	return out, nil
}

func (f *fakeShop) Count(_ context.Context, kind orders.EntityKind) (int64, error) {
	switch kind {
	case orders.KindCustomers:
		return 1, nil
	case orders.KindProducts:
		return int64(len(f.products)), nil
	}
	return int64(len(f.details)), nil
}

// fixedPicker always returns the highest choice.
type fixedPicker struct{}

func (fixedPicker) IntN(n int) int { return n - 1 }

func run(t *testing.T, shop *fakeShop, input string) string {
	t.Helper()
	m := &Menu{
		Catalog:   shop,
		Customers: shop,
		Orders:    shop,
		Reader:    shop,
		Payments:  &payment.Service{Orders: shop, Selector: payment.FixedSelector(payment.MethodCard)},
		Faker:     demo.NewFaker(1),
		Picker:    fixedPicker{},
	}
	var out bytes.Buffer
	require.NoError(t, m.Run(context.Background(), strings.NewReader(input), &out))
	return out.String()
}

func TestMenu_ExitAndEOF(t *testing.T) {
	assert.Contains(t, run(t, newFakeShop(), "-1\n"), "Bye Bye")
	assert.Contains(t, run(t, newFakeShop(), ""), "Bye Bye")
}

func TestMenu_InvalidOption(t *testing.T) {
	out := run(t, newFakeShop(), "42\n-1\n")
	assert.Contains(t, out, "Invalid Option")
}

func TestMenu_ProductList(t *testing.T) {
	out := run(t, newFakeShop(), "2\nElectronics\n2\nBoats\n-1\n")

	assert.Contains(t, out, "List of Product Categories: Electronics")
	assert.Contains(t, out, "Headphones")
	assert.Contains(t, out, "9.99")
	assert.Contains(t, out, "Incorrect Category - Try Again")
}

func TestMenu_ProductDetails(t *testing.T) {
	out := run(t, newFakeShop(), "3\n1\n3\n\n3\n77\n3\nabc\n-1\n")

	assert.Contains(t, out, "ProductName   : Headphones")
	assert.Contains(t, out, "ProductName   : Cable")
	assert.Contains(t, out, "Product not found.")
	assert.Contains(t, out, `Error: "abc" is not a valid id`)
}

func TestMenu_Reviews(t *testing.T) {
	out := run(t, newFakeShop(), "4\n1\ndesc\n4\n2\n\n4\n1\nsideways\n-1\n")

	assert.Contains(t, out, "Average Rating: 4.50")
	assert.Contains(t, out, "No reviews found for this product.")
	assert.Contains(t, out, `unknown sort order "sideways"`)
}

func TestMenu_CreateUser(t *testing.T) {
	shop := newFakeShop()
	out := run(t, shop, "1\n-1\n")

	assert.Contains(t, out, "New consumer created with ID 1")
	assert.Contains(t, out, "Customer Data: id=1")
	assert.NotContains(t, out, "hash")
}

func TestMenu_CreateOrderThenPay(t *testing.T) {
	shop := newFakeShop()
	out := run(t, shop, "5\n7\n100\n6\n1\n-1\n")

	// fixedPicker: customer 1, three items of product 2, quantity 3 each
	require.Len(t, shop.placed, 3)
	assert.Contains(t, out, "New Order ID: 100")
	assert.Contains(t, out, "Item ID / Quantities: [(2, 3), (2, 3), (2, 3)]")
	assert.Contains(t, out, "Total Price: 45.00")
	assert.Contains(t, out, "Order 100: amount 45.00, status pending, payment method Card")
	assert.NotContains(t, out, "already paid")
	assert.Contains(t, out, "Customer Orders:")
}

func TestMenu_PaymentForUnknownOrder(t *testing.T) {
	out := run(t, newFakeShop(), "7\n9\n-1\n")
	assert.Contains(t, out, "Error: order 9 not found")
}

func TestMenu_AddProduct(t *testing.T) {
	shop := newFakeShop()
	out := run(t, shop, "8\n-1\n")

	assert.Contains(t, out, "New product created with ID 3")
	assert.Len(t, shop.products, 3)
}

func TestFormatItems(t *testing.T) {
	got := formatItems([]orders.ItemInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}})
	assert.Equal(t, "[(1, 2), (2, 3)]", got)
}
