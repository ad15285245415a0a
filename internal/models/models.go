package models

// Item represents an item row in the database.
type Item struct {
	// Assigned by the store (SERIAL primary key), immutable after creation
	ID int64 `json:"id" db:"id"`

	// Assuming 'name' in DB is VARCHAR(255) NOT NULL
	Name string `json:"name" db:"name"`

	// Stored as DECIMAL in the DB, always surfaced to callers as float64
	Price float64 `json:"price" db:"price"`
}

// CreateItemInput carries the fields for a new item. Price may be NaN when the
// request did not contain a usable number; validation reports that as missing.
type CreateItemInput struct {
	Name  string
	Price float64
}

// UpdateItemInput is nominally partial, but the service requires both fields
// for an update to succeed.
type UpdateItemInput struct {
	Name  *string
	Price float64
}
