package entity

type Customer struct {
	Base
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     string  `db:"phone"`
	Address   *string `db:"address"`
	City      *string `db:"city"`
	Country   *string `db:"country"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
