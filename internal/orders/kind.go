package orders

type EntityKind string

const (
	KindCustomers EntityKind = "customers"
	KindOrders    EntityKind = "orders"
	KindProducts  EntityKind = "products"
)

var countQueries = map[EntityKind]string{
	KindCustomers: `SELECT COUNT(*) FROM Customers`,
	KindOrders:    `SELECT COUNT(*) FROM Orders`,
	KindProducts:  `SELECT COUNT(*) FROM Products`,
}
