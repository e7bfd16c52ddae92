package request

import (
	"resource-backend/internal/usecase"
)

type CreateRateRefRequest struct {
	ID     string `json:"id" binding:"omitempty,max=255"`
	RateID string `json:"rate_id" binding:"max=255"`
}

func (r *CreateRateRefRequest) ToInput() usecase.CreateRateRefInput {
	return usecase.CreateRateRefInput{
		ID:     r.ID,
		RateID: r.RateID,
	}
}
