package category

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateName = errors.New("category name already exists")
)

// Category is a label expenses reference by name. Names are unique
// case-insensitively; "Utilities" and "utilities" are the same category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	IsDefault bool
}

// Defaults seed a fresh installation so the first expense has something
// to attach to.
func Defaults() []Category {
	return []Category{
		{Name: "Housing", Color: "#2563eb", Icon: "home", IsDefault: true},
		{Name: "Utilities", Color: "#0891b2", Icon: "zap", IsDefault: true},
		{Name: "Insurance", Color: "#7c3aed", Icon: "shield", IsDefault: true},
		{Name: "Subscriptions", Color: "#db2777", Icon: "repeat", IsDefault: true},
		{Name: "Debt", Color: "#dc2626", Icon: "credit-card", IsDefault: true},
		{Name: "Transportation", Color: "#ea580c", Icon: "car", IsDefault: true},
		{Name: "Health", Color: "#16a34a", Icon: "heart", IsDefault: true},
		{Name: "Other", Color: "#64748b", Icon: "tag", IsDefault: true},
	}
}
