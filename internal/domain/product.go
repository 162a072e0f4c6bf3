package domain

// Product represents the product entity
type Product struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Category string `gorm:"size:100;not null;index"`
	Name     string `gorm:"size:100;not null"`
}

// TableName pins the table to products regardless of naming strategy
func (p *Product) TableName() string {
	return "products"
}

// NewProduct creates a product that has not been persisted yet.
// ID stays zero until the repository assigns one.
func NewProduct(category, name string) *Product {
	return &Product{
		Category: category,
		Name:     name,
	}
}

// Update replaces category and name together
func (p *Product) Update(category, name string) {
	p.Category = category
	p.Name = name
}

// IsNew reports whether the product still needs an identity
func (p *Product) IsNew() bool {
	return p.ID == 0
}
