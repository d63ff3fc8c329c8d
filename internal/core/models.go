package core

type UserRecord struct {
	ID       string
	Username string
	Name     string
	IsAdmin  bool
}

type UnitRecord struct {
	ID   uint
	Name string
}

type CategoryRecord struct {
	ID   uint
	Name string
}

type ProductRecord struct {
	ID           uint
	Name         string
	PricePerUnit int
	Quantity     int
	CategoryID   uint
	UnitID       uint
	UnitName     string
}

// CategoryDetails is a category together with the products filed under it.
type CategoryDetails struct {
	Category CategoryRecord
	Products []ProductRecord
}

type AuthMessage struct {
	Username string
	Password string
}

type RegisterMessage struct {
	Username string
	Name     string
	Password string
}

type ProductMessage struct {
	Name         string
	PricePerUnit int
	Quantity     int
	CategoryID   uint
	UnitID       uint
}
