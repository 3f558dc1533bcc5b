package entity

// Customer identity record, one row per distinct email.
// Email is unique case-insensitively (LOWER(email) unique index).
type Customer struct {
	BaseNoDelete
	FullName string  `db:"full_name"`
	Email    string  `db:"email"`
	Phone    *string `db:"phone"`
}
