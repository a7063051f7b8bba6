package handler

// CustomerResponse represents a customer in API responses
// @Description Customer details returned by the API
type CustomerResponse struct {
	ID             string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Code           string `json:"code" example:"KH-0042"`
	Name           string `json:"name" example:"Saigon Riverside Hotel"`
	NormalizedName string `json:"normalized_name" example:"saigon riverside hotel"`
	Status         string `json:"status" example:"active" enums:"lead,active,inactive,terminated"`
	Phone          string `json:"phone" example:"+84 28 3823 4999"`
	Email          string `json:"email" example:"facilities@riverside.example.vn"`
	Address        string `json:"address" example:"18 Ton Duc Thang"`
	District       string `json:"district" example:"District 1"`
	Notes          string `json:"notes" example:"Lobby and rooftop bar"`
	CreatedAt      string `json:"created_at" example:"2025-01-24T12:00:00Z"`
	UpdatedAt      string `json:"updated_at" example:"2025-01-24T12:00:00Z"`
	Version        int    `json:"version" example:"1"`
}

// CustomerListResponse represents a customer list item
// @Description Customer list item with basic information
type CustomerListResponse struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Code      string `json:"code" example:"KH-0042"`
	Name      string `json:"name" example:"Saigon Riverside Hotel"`
	Status    string `json:"status" example:"active" enums:"lead,active,inactive,terminated"`
	Phone     string `json:"phone" example:"+84 28 3823 4999"`
	District  string `json:"district" example:"District 1"`
	CreatedAt string `json:"created_at" example:"2025-01-24T12:00:00Z"`
}
