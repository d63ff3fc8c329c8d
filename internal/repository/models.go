package repository

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false;index"`
}

type Unit struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(32);not null"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(64);uniqueIndex;not null"`
}

// Product belongs to a unit and a category. The association fields exist only
// so that migrations emit the foreign keys; they are never preloaded.
type Product struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"type:varchar(255);not null"`
	UnitID       uint     `gorm:"not null;default:1"`
	Unit         Unit     `gorm:"foreignKey:UnitID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PricePerUnit int      `gorm:"not null"`
	Quantity     int      `gorm:"not null;default:0"`
	CategoryID   uint     `gorm:"not null;index"`
	Category     Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

type Order struct {
	ID           uint    `gorm:"primaryKey"`
	CustomerName string  `gorm:"type:varchar(255);not null"`
	Total        float64 `gorm:"not null"`
}

type OrderDetail struct {
	OrderID   uint    `gorm:"primaryKey;autoIncrement:false"`
	Order     Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductID uint    `gorm:"primaryKey;autoIncrement:false"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int     `gorm:"not null;default:0"`
}

// ProductListing is a product row joined with the name of its unit.
type ProductListing struct {
	ID           uint
	Name         string
	PricePerUnit int
	Quantity     int
	CategoryID   uint
	UnitID       uint
	UnitName     string
}
