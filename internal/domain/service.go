package domain

// Service is a catalog entry. Category is stored as a plain string rather
// than a foreign key to ServiceCategory; the catalog filters on the literal
// value.
type Service struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
	Popular     bool   `json:"popular"`
}

type ServiceCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type CreateServiceInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
	Featured    bool   `json:"featured"`
	Popular     bool   `json:"popular"`
}

type CreateServiceCategoryInput struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon" validate:"required"`
}
