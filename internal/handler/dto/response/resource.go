package response

import (
	"resource-backend/internal/usecase/readmodel"
)

type ResourceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ContactID  string `json:"contact_id"`
	CreatedAt  int64  `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt int64  `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

func FromResourceRM(rm *readmodel.ResourceRM) *ResourceResponse {
	return &ResourceResponse{
		ID:         rm.ID,
		Name:       rm.Name,
		FirstName:  rm.FirstName,
		LastName:   rm.LastName,
		ContactID:  rm.ContactID,
		CreatedAt:  rm.CreatedAt.Unix(),
		CreatedBy:  rm.CreatedBy,
		ModifiedAt: rm.ModifiedAt.Unix(),
		ModifiedBy: rm.ModifiedBy,
	}
}

func FromResourceList(items []*readmodel.ResourceRM) []*ResourceResponse {
	res := make([]*ResourceResponse, len(items))
	for i, it := range items {
		res[i] = FromResourceRM(it)
	}
	return res
}
