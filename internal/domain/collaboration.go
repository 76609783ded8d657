package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CollaborationStatus string

const (
	CollaborationStatusPending   CollaborationStatus = "pending"
	CollaborationStatusAccepted  CollaborationStatus = "accepted"
	CollaborationStatusActive    CollaborationStatus = "active"
	CollaborationStatusCompleted CollaborationStatus = "completed"
	CollaborationStatusCancelled CollaborationStatus = "cancelled"
	CollaborationStatusDeclined  CollaborationStatus = "declined"
)

// collaborationTransitions é o grafo de transições legais; estados ausentes são terminais
var collaborationTransitions = map[CollaborationStatus][]CollaborationStatus{
	CollaborationStatusPending: {
		CollaborationStatusAccepted,
		CollaborationStatusActive,
		CollaborationStatusCancelled,
		CollaborationStatusDeclined,
	},
	CollaborationStatusAccepted: {
		CollaborationStatusActive,
		CollaborationStatusCompleted,
		CollaborationStatusCancelled,
	},
	CollaborationStatusActive: {
		CollaborationStatusCompleted,
		CollaborationStatusCancelled,
	},
}

func (s CollaborationStatus) IsValid() bool {
	switch s {
	case CollaborationStatusPending, CollaborationStatusAccepted, CollaborationStatusActive,
		CollaborationStatusCompleted, CollaborationStatusCancelled, CollaborationStatusDeclined:
		return true
	}
	return false
}

func (s CollaborationStatus) IsTerminal() bool {
	_, ok := collaborationTransitions[s]
	return !ok
}

// CanTransitionTo informa se a mudança de status é legal. Manter o mesmo status é sempre permitido.
func (s CollaborationStatus) CanTransitionTo(next CollaborationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range collaborationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Collaboration struct {
	ID               int                 `json:"id"`
	CampaignID       int                 `json:"campaignId"`
	InfluencerID     int                 `json:"influencerId"`
	Status           CollaborationStatus `json:"status"`
	AgreedRate       *decimal.Decimal    `json:"agreedRate"`
	Deliverables     *string             `json:"deliverables"`
	ActualReach      *int                `json:"actualReach"`
	ActualEngagement *decimal.Decimal    `json:"actualEngagement"`
	CompletedAt      *time.Time          `json:"completedAt"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type CollaborationWithInfluencer struct {
	Collaboration
	Influencer *Influencer `json:"influencer"`
}

type CollaborationWithDetails struct {
	Collaboration
	Campaign   *Campaign   `json:"campaign"`
	Influencer *Influencer `json:"influencer"`
}

// CollaborationFilters filtra por chaves estrangeiras (AND). CampaignIDs vazio e não nil não casa nada.
type CollaborationFilters struct {
	CampaignIDs  []int
	InfluencerID *int
	Status       CollaborationStatus
}

func (f CollaborationFilters) Match(c *Collaboration) bool {
	if f.CampaignIDs != nil && !containsID(f.CampaignIDs, c.CampaignID) {
		return false
	}
	if f.InfluencerID != nil && c.InfluencerID != *f.InfluencerID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	return true
}

type CreateCollaborationRequest struct {
	CampaignID       int                 `json:"campaignId" validate:"required,gt=0"`
	InfluencerID     int                 `json:"influencerId" validate:"required,gt=0"`
	Status           CollaborationStatus `json:"status" validate:"omitempty,oneof=pending accepted active completed cancelled declined"`
	AgreedRate       *decimal.Decimal    `json:"agreedRate" validate:"omitempty,gte=0"`
	Deliverables     *string             `json:"deliverables"`
	ActualReach      *int                `json:"actualReach" validate:"omitempty,gte=0"`
	ActualEngagement *decimal.Decimal    `json:"actualEngagement" validate:"omitempty,gte=0,lte=100"`
	CompletedAt      *time.Time          `json:"completedAt"`
}

type UpdateCollaborationRequest struct {
	CampaignID       *int                 `json:"campaignId" validate:"omitempty,gt=0"`
	InfluencerID     *int                 `json:"influencerId" validate:"omitempty,gt=0"`
	Status           *CollaborationStatus `json:"status" validate:"omitempty,oneof=pending accepted active completed cancelled declined"`
	AgreedRate       *decimal.Decimal     `json:"agreedRate" validate:"omitempty,gte=0"`
	Deliverables     *string              `json:"deliverables"`
	ActualReach      *int                 `json:"actualReach" validate:"omitempty,gte=0"`
	ActualEngagement *decimal.Decimal     `json:"actualEngagement" validate:"omitempty,gte=0,lte=100"`
	CompletedAt      *time.Time           `json:"completedAt"`
}

func (r *UpdateCollaborationRequest) Apply(c *Collaboration) {
	if r.CampaignID != nil {
		c.CampaignID = *r.CampaignID
	}
	if r.InfluencerID != nil {
		c.InfluencerID = *r.InfluencerID
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.AgreedRate != nil {
		c.AgreedRate = r.AgreedRate
	}
	if r.Deliverables != nil {
		c.Deliverables = r.Deliverables
	}
	if r.ActualReach != nil {
		c.ActualReach = r.ActualReach
	}
	if r.ActualEngagement != nil {
		c.ActualEngagement = r.ActualEngagement
	}
	if r.CompletedAt != nil {
		c.CompletedAt = r.CompletedAt
	}
}

func containsID(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
