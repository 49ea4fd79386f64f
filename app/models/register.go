package models

// Model dipakai oleh command db:migrate untuk AutoMigrate
type Model struct {
	Model interface{}
}

func RegisterModels() []Model {
	return []Model{
		{Model: User{}},
		{Model: Merchant{}},
		{Model: Driver{}},
		{Model: MenuItem{}},
		{Model: Cart{}},
		{Model: CartItem{}},
		{Model: Order{}},
		{Model: OrderItem{}},
	}
}
