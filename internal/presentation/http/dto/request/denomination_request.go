package request

// CreateDenominationRequest represents a denomination creation request
type CreateDenominationRequest struct {
	Value float64 `json:"value" binding:"required,gt=0"`
}

// ResolveChangeRequest represents a standalone change resolution request
type ResolveChangeRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}
