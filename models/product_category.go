package models

// ProductCategory is one row of the product/category join table.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (pc *ProductCategory) TableName() string {
	return "product_categories"
}
