package dto

type OrderItemRequest struct {
	ProductID uint  `json:"product_id"`
	Quantity  int   `json:"quantity"`
	ColorID   *uint `json:"color_id"`
	SizeID    *uint `json:"size_id"`
}

type OrderCreateRequest struct {
	FullName  string             `json:"full_name"`
	Email     string             `json:"email"`
	Address   string             `json:"address"`
	City      string             `json:"city"`
	Country   string             `json:"country"`
	Telephone string             `json:"telephone"`
	Items     []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}
