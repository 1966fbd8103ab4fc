package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/hydrate/registry"
)

// Product is a catalog item referenced by order lines.
type Product struct {

	// Unique identifier for the product.
	ID int `json:"id"`

	// Name of the product.
	Name string `json:"name"`
}

// User is the account an order was placed by.
type User struct {

	// Unique identifier for the user.
	ID int `json:"id"`

	// Display name of the user.
	Name string `json:"name"`
}

// OrderProduct is one line of an order.
type OrderProduct struct {

	// The product being ordered.
	Product *Product `json:"product"`

	// Number of units ordered.
	Quantity int `json:"quantity"`
}

// Order is a placed order with its lines, owner and creation time.
type Order struct {

	// Ordered lines, in the order they were added.
	Products []OrderProduct `json:"products"`

	// The user who placed the order.
	OrderedBy *User `json:"orderedBy"`

	// Timestamp when the order was created.
	// Format: date-time
	CreatedDate strfmt.DateTime `json:"createdDate"`
}

// Declare registers the reconstruction metadata for the order model chain
// into r. Call once before deserializing.
func Declare(r *registry.Registry) {
	registry.DeclareDataType[OrderProduct](r, "product", registry.TypeFor[Product](), false)

	registry.DeclareDataType[Order](r, "products", registry.TypeFor[OrderProduct](), true)
	registry.DeclareDataType[Order](r, "orderedBy", registry.TypeFor[User](), false)
	registry.DeclareDataType[Order](r, "createdDate", registry.DateType, false)
}
