package block_date

// BlockDateRequest HTTP request model
type BlockDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// BlockDateResponse HTTP response model
type BlockDateResponse struct {
	BusinessID string `json:"businessId"`
	Date       string `json:"date"`
}
