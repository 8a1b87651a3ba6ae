package author

// Author represents the core Author entity.
// ID is assigned by the store and never changes.
type Author struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Bio  *string `json:"bio" db:"bio"` // nullable
}
