package domain

// Stats is the admin dashboard rollup.
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalFarmers  int64 `json:"total_farmers"`
	TotalBuyers   int64 `json:"total_buyers"`
	TotalProducts int64 `json:"total_products"`
	TotalOrders   int64 `json:"total_orders"`
	PendingOrders int64 `json:"pending_orders"`
}
