package models

// BlacklistedTokenDB represents a revoked JWT stored in the database
type BlacklistedTokenDB struct {
	Token string `db:"token"`
}
