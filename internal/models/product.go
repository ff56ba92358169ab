package models

import "time"

// Product represents a catalog item. JSON field names follow the wire
// contract the storefront consumes (`_id`, camelCase timestamps).
type Product struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required"`
	Price     float64   `json:"price" validate:"required"`
	Image     string    `json:"image" validate:"required"`
	Size      string    `json:"size"`
	Material  string    `json:"material"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductUpdate carries the updatable fields of a product. Pointer fields
// distinguish "not supplied" from a supplied zero value, so an update only
// touches what the request actually sent.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Image    *string  `json:"image"`
	Size     *string  `json:"size"`
	Material *string  `json:"material"`
	Type     *string  `json:"type"`
}

// Fields returns the supplied fields as a column->value map for a partial
// store update.
func (u ProductUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Size != nil {
		fields["size"] = *u.Size
	}
	if u.Material != nil {
		fields["material"] = *u.Material
	}
	if u.Type != nil {
		fields["type"] = *u.Type
	}
	return fields
}
