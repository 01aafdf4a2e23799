package entity

// User is a business owner account. No login flow exists, accounts are
// created once and linked to their listing.
type User struct {
	BaseSimple
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	BusinessID   *int64   `db:"business_id"`
	PlanType     PlanType `db:"plan_type"`
}
