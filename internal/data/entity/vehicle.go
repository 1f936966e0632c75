package entity

// Vehicle is a catalog entry, not a physical unit. HasPlate marks vehicles
// that need a driving license to operate (plated scooters vs. bikes).
type Vehicle struct {
	Base
	SKU      string   `db:"sku"`
	Name     string   `db:"name"`
	Deposit  *float64 `db:"deposit"`
	HasPlate bool     `db:"has_plate"`
}
