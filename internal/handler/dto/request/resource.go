package request

import (
	"resource-backend/internal/usecase"
)

type CreateResourceRequest struct {
	ID        string `json:"id" binding:"omitempty,max=255"`
	Name      string `json:"name" binding:"omitempty,max=255"`
	FirstName string `json:"first_name" binding:"max=255"`
	LastName  string `json:"last_name" binding:"max=255"`
	ContactID string `json:"contact_id" binding:"max=255"`
}

type UpdateResourceRequest struct {
	Name      string `json:"name" binding:"max=255"`
	ContactID string `json:"contact_id" binding:"omitempty,max=255"`
}

func (r *CreateResourceRequest) ToInput() usecase.CreateResourceInput {
	return usecase.CreateResourceInput{
		ID:        r.ID,
		Name:      r.Name,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		ContactID: r.ContactID,
	}
}

func (r *UpdateResourceRequest) ToInput() usecase.UpdateResourceInput {
	return usecase.UpdateResourceInput{
		Name:      r.Name,
		ContactID: r.ContactID,
	}
}
