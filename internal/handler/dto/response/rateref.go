package response

import (
	"resource-backend/internal/usecase/readmodel"
)

type RateRefResponse struct {
	ID        string `json:"id"`
	RateID    string `json:"rate_id"`
	RateTitle string `json:"rate_title"`
	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

func FromRateRefRM(rm *readmodel.RateRefRM) *RateRefResponse {
	return &RateRefResponse{
		ID:        rm.ID,
		RateID:    rm.RateID,
		RateTitle: rm.RateTitle,
		CreatedAt: rm.CreatedAt.Unix(),
		CreatedBy: rm.CreatedBy,
	}
}

func FromRateRefList(items []*readmodel.RateRefRM) []*RateRefResponse {
	res := make([]*RateRefResponse, len(items))
	for i, it := range items {
		res[i] = FromRateRefRM(it)
	}
	return res
}
