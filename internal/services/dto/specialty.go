package dto

type CreateSpecialtyRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	Icon          *string  `json:"icon"`
	Color         *string  `json:"color"`
	Subcategories []string `json:"subcategories"`
	SortOrder     *int     `json:"sortOrder"`
	IsActive      *bool    `json:"isActive"`
}

// UpdateSpecialtyRequest is a partial update: only non-nil fields are
// applied (merge, not replace).
type UpdateSpecialtyRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Icon          *string   `json:"icon"`
	Color         *string   `json:"color"`
	Subcategories *[]string `json:"subcategories"`
	SortOrder     *int      `json:"sortOrder"`
	IsActive      *bool     `json:"isActive"`
}

// SpecialtyResponse lets handlers drop subcategories for lightweight public
// payloads.
type SpecialtyResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description,omitempty"`
	Icon          *string  `json:"icon"`
	Color         string   `json:"color"`
	Subcategories []string `json:"subcategories,omitempty"`
	SortOrder     int      `json:"sortOrder"`
	IsActive      bool     `json:"isActive"`
}
