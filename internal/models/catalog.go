package models

// Name-keyed lookup entities. Each owns a collection of products computed by
// query; deleting one cascades to its products through the foreign key.

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null;size:255;uniqueIndex" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Category) TableName() string { return "categories" }

func (Category) PrimaryKeyColumn() string { return "id" }

type Brand struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null;size:255;uniqueIndex" json:"name"`
	Products []Product `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Brand) TableName() string { return "brands" }

func (Brand) PrimaryKeyColumn() string { return "id" }

type Color struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Products []Product `gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Color) TableName() string { return "colors" }

func (Color) PrimaryKeyColumn() string { return "id" }

type Size struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Products []Product `gorm:"foreignKey:SizeID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Size) TableName() string { return "sizes" }

func (Size) PrimaryKeyColumn() string { return "id" }
