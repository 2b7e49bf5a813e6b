package models

// All lists every persisted model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Brand{},
		&Color{},
		&Size{},
		&Product{},
		&Rating{},
		&Order{},
		&OrderItem{},
	}
}
