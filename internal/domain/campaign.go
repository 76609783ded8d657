package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// CampaignStatusAll desativa o filtro de status na listagem
const CampaignStatusAll = "all"

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Category       string          `json:"category"`
	Budget         decimal.Decimal `json:"budget"`
	Status         CampaignStatus  `json:"status"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	TargetAudience *string         `json:"targetAudience"`
	Goals          *string         `json:"goals"`
	CreatedBy      int             `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CampaignWithCollaborations é a campanha enriquecida com o criador e as colaborações
type CampaignWithCollaborations struct {
	Campaign
	Creator        *User                          `json:"creator"`
	Collaborations []*CollaborationWithInfluencer `json:"collaborations"`
}

type CampaignFilters struct {
	UserID *int
	Status string
}

// HasStatus indica se o filtro de status deve ser aplicado
func (f CampaignFilters) HasStatus() bool {
	return f.Status != "" && f.Status != CampaignStatusAll
}

type CreateCampaignRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    *string         `json:"description"`
	Category       string          `json:"category" validate:"required"`
	Budget         decimal.Decimal `json:"budget" validate:"gte=0"`
	Status         CampaignStatus  `json:"status" validate:"omitempty,oneof=draft pending active completed cancelled"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	TargetAudience *string         `json:"targetAudience"`
	Goals          *string         `json:"goals"`
	CreatedBy      int             `json:"createdBy" validate:"required,gt=0"`
}

type UpdateCampaignRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category" validate:"omitempty,min=1"`
	Budget         *decimal.Decimal `json:"budget" validate:"omitempty,gte=0"`
	Status         *CampaignStatus  `json:"status" validate:"omitempty,oneof=draft pending active completed cancelled"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	TargetAudience *string          `json:"targetAudience"`
	Goals          *string          `json:"goals"`
	CreatedBy      *int             `json:"createdBy" validate:"omitempty,gt=0"`
}

func (r *UpdateCampaignRequest) Apply(c *Campaign) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.Category != nil {
		c.Category = *r.Category
	}
	if r.Budget != nil {
		c.Budget = *r.Budget
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.StartDate != nil {
		c.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		c.EndDate = r.EndDate
	}
	if r.TargetAudience != nil {
		c.TargetAudience = r.TargetAudience
	}
	if r.Goals != nil {
		c.Goals = r.Goals
	}
	if r.CreatedBy != nil {
		c.CreatedBy = *r.CreatedBy
	}
}
