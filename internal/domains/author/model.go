package author

import "time"

// Author is the domain entity. IDs are server-assigned serials;
// full_name is derived, never stored.
type Author struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FullName concatenates first and last name.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
