// Package cli is the interactive text menu of the shop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ariefcatur/simple-shop/internal/catalog"
	"github.com/ariefcatur/simple-shop/internal/customers"
	"github.com/ariefcatur/simple-shop/internal/demo"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/ariefcatur/simple-shop/internal/orders"
	"github.com/ariefcatur/simple-shop/internal/payment"
	"go.uber.org/zap"
)

type Catalog interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, category string) ([]catalog.ProductSummary, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, bool, error)
	RandomProduct(ctx context.Context) (catalog.Product, bool, error)
	ListReviews(ctx context.Context, productID int64, order catalog.SortOrder) (catalog.ReviewList, error)
	AddProduct(ctx context.Context, p catalog.NewProduct) (int64, error)
}

type Customers interface {
	Create(ctx context.Context, c customers.NewCustomer) (int64, error)
	Get(ctx context.Context, id int64) (customers.Customer, bool, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, customerID int64, items []orders.ItemInput) (orders.Receipt, error)
}

type OrderReader interface {
	GetOrderDetails(ctx context.Context, orderID int64) (orders.OrderDetails, bool, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]orders.Order, error)
	Count(ctx context.Context, kind orders.EntityKind) (int64, error)
}

type Payments interface {
	Quote(ctx context.Context, orderID int64) (payment.Quote, error)
}

type Menu struct {
	Catalog   Catalog
	Customers Customers
	Orders    OrderCreator
	Reader    OrderReader
	Payments  Payments
	Faker     *demo.Faker
	Picker    demo.Picker

	in  *bufio.Scanner
	out io.Writer
}

const options = `
What do you want to do.
Options:
1. Create User
2. Get Product List
3. Get Product Details
4. Get Product Reviews
5. Create Order
6. Get Customer Orders
7. Make Payment
8. Add Product to Shop
-1. Exit
`

// Run serves the menu until the user exits or in is exhausted.
func (m *Menu) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	m.in = bufio.NewScanner(in)
	m.out = out

	fmt.Fprintln(out, "\nWelcome to Simple Shop")
	for {
		fmt.Fprint(out, options)
		opt, ok := m.prompt("Select an option: ")
		if !ok || opt == "-1" {
			fmt.Fprintln(out, "Bye Bye")
			return m.in.Err()
		}

		var err error
		switch opt {
		case "1":
			err = m.createUser(ctx)
		case "2":
			err = m.productList(ctx)
		case "3":
			err = m.productDetails(ctx)
		case "4":
			err = m.productReviews(ctx)
		case "5":
			err = m.createOrder(ctx)
		case "6":
			err = m.customerOrders(ctx)
		case "7":
			err = m.makePayment(ctx)
		case "8":
			err = m.addProduct(ctx)
		default:
			fmt.Fprintln(out, "Invalid Option. Press 1-8 or -1")
			continue
		}
		if err != nil {
			logger.Warn(ctx, "menu option failed", zap.String("option", opt), zap.Error(err))
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptID(label string) (int64, error) {
	s, _ := m.prompt(label)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}
	return id, nil
}

func (m *Menu) createUser(ctx context.Context) error {
	id, err := m.Customers.Create(ctx, m.Faker.Customer())
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "New consumer created with ID %d\n", id)

	c, ok, err := m.Customers.Get(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(m.out, "Customer Data: id=%d username=%s name=%s %s email=%s phone=%s address=%q registered=%s\n",
			c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
			c.RegistrationDate.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (m *Menu) productList(ctx context.Context) error {
	cats, err := m.Catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "List of Product Categories: %s\n", strings.Join(cats, ", "))

	category, _ := m.prompt("Enter Category to List (empty for ALL products): ")
	products, err := m.Catalog.ListProducts(ctx, category)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "Incorrect Category - Try Again")
		return nil
	}

	fmt.Fprintf(m.out, "\nProducts in the '%s' category:\n", category)
	tw := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tPrice")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	return tw.Flush()
}

func (m *Menu) productDetails(ctx context.Context) error {
	s, _ := m.prompt("Enter Product ID (empty for a random product): ")

	var (
		p   catalog.Product
		ok  bool
		err error
	)
	if s == "" {
		p, ok, err = m.Catalog.RandomProduct(ctx)
	} else {
		id, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return fmt.Errorf("%q is not a valid id", s)
		}
		p, ok, err = m.Catalog.GetProduct(ctx, id)
	}
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Product not found.")
		return nil
	}

	fmt.Fprintln(m.out, "\nProduct Details:")
	tw := tabwriter.NewWriter(m.out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "ProductID\t: %d\n", p.ID)
	fmt.Fprintf(tw, "ProductName\t: %s\n", p.Name)
	fmt.Fprintf(tw, "Description\t: %s\n", p.Description)
	fmt.Fprintf(tw, "Price\t: %s\n", p.Price.StringFixed(2))
	fmt.Fprintf(tw, "Category\t: %s\n", p.Category)
	fmt.Fprintf(tw, "StockQuantity\t: %d\n", p.StockQuantity)
	fmt.Fprintf(tw, "Manufacturer\t: %s\n", p.Manufacturer)
	fmt.Fprintf(tw, "ReleaseDate\t: %s\n", p.ReleaseDate.Format("2006-01-02"))
	fmt.Fprintf(tw, "ImageURL\t: %s\n", p.ImageURL)
	return tw.Flush()
}

func (m *Menu) productReviews(ctx context.Context) error {
	id, err := m.promptID("Enter Product ID : ")
	if err != nil {
		return err
	}
	s, _ := m.prompt("Sort by rating (asc/desc, empty for none): ")
	order, err := catalog.ParseSortOrder(s)
	if err != nil {
		return err
	}

	reviews, err := m.Catalog.ListReviews(ctx, id, order)
	if err != nil {
		return err
	}
	avg, ok := reviews.Average()
	if !ok {
		fmt.Fprintln(m.out, "No reviews found for this product.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(m.out, "Rating: %d, Review Date: %s, Comment: %s\n",
			r.Rating, r.ReviewDate.Format("2006-01-02"), r.Comment)
	}
	fmt.Fprintf(m.out, "\nAverage Rating: %.2f\n", avg)
	return nil
}

func (m *Menu) createOrder(ctx context.Context) error {
	nCustomers, err := m.Reader.Count(ctx, orders.KindCustomers)
	if err != nil {
		return err
	}
	nProducts, err := m.Reader.Count(ctx, orders.KindProducts)
	if err != nil {
		return err
	}
	if nCustomers == 0 || nProducts == 0 {
		return errors.New("need at least one customer and one product to place an order")
	}

	customerID := demo.PickID(m.Picker, nCustomers)
	items := demo.OrderItems(m.Picker, nProducts)
	rc, err := m.Orders.CreateOrder(ctx, customerID, items)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "New Order ID: %d\n", rc.OrderID)
	fmt.Fprintf(m.out, "\nNew Order for Customer: %d, Item ID / Quantities: %s\n", customerID, formatItems(items))

	d, ok, err := m.Reader.GetOrderDetails(ctx, rc.OrderID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.out, "Order not found.")
		return nil
	}
	m.printOrder(d)
	fmt.Fprintf(m.out, "Total Price: %s\n", d.TotalAmount.StringFixed(2))
	fmt.Fprintln(m.out, "You can proceed with the payment to initiate the shipping process.")
	return nil
}

func (m *Menu) customerOrders(ctx context.Context) error {
	id, err := m.promptID("Enter Customer ID: ")
	if err != nil {
		return err
	}
	list, err := m.Reader.CustomerOrders(ctx, id)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "Orders not found.")
		return nil
	}
	fmt.Fprintln(m.out, "Customer Orders:")
	tw := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OrderID\tDate\tTotal\tStatus")
	for _, o := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.OrderDate.Format("2006-01-02 15:04"), o.TotalAmount.StringFixed(2), o.Status)
	}
	return tw.Flush()
}

func (m *Menu) makePayment(ctx context.Context) error {
	id, err := m.promptID("Enter Order ID for payment: ")
	if err != nil {
		return err
	}
	q, err := m.Payments.Quote(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Order %d: amount %s, status %s, payment method %s\n",
		q.OrderID, q.Amount.StringFixed(2), q.Status, q.Method)
	if !q.Payable {
		fmt.Fprintln(m.out, "Order is already paid")
	}
	return nil
}

func (m *Menu) addProduct(ctx context.Context) error {
	np := m.Faker.Product()
	id, err := m.Catalog.AddProduct(ctx, np)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "New product created with ID %d\n", id)

	p, ok, err := m.Catalog.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(m.out, "Product Information: %s (%s) %s, stock %d\n",
			p.Name, p.Category, p.Price.StringFixed(2), p.StockQuantity)
	}
	return nil
}

func (m *Menu) printOrder(d orders.OrderDetails) {
	fmt.Fprintln(m.out, "Order Details:")
	fmt.Fprintf(m.out, "OrderID : %d\n", d.ID)
	fmt.Fprintf(m.out, "OrderDate : %s\n", d.OrderDate.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(m.out, "OrderStatus : %s\n", d.Status)
	fmt.Fprintf(m.out, "Customer : %d %s %s <%s>\n", d.Customer.ID, d.Customer.FirstName, d.Customer.LastName, d.Customer.Email)
	fmt.Fprintln(m.out, "Order Items:")
	for _, it := range d.Items {
		fmt.Fprintf(m.out, "ProductID : %d, ProductName : %s, Quantity : %d, ItemPrice : %s\n",
			it.ProductID, it.ProductName, it.Quantity, it.ItemPrice.StringFixed(2))
	}
}

func formatItems(items []orders.ItemInput) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("(%d, %d)", it.ProductID, it.Quantity))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
