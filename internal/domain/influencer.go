package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AllCategories é o valor sentinela enviado pelo dashboard para "sem filtro de categoria"
const AllCategories = "All Categories"

const (
	CategoryFashionBeauty = "Fashion & Beauty"
	CategoryTechnology    = "Technology"
	CategoryHealthFitness = "Health & Fitness"
	CategoryFoodLifestyle = "Food & Lifestyle"
	CategoryTravel        = "Travel"
	CategoryLifestyle     = "Lifestyle"
)

// Categories lista as verticais conhecidas. Outras categorias continuam aceitas.
var Categories = []string{
	CategoryFashionBeauty,
	CategoryTechnology,
	CategoryHealthFitness,
	CategoryFoodLifestyle,
	CategoryTravel,
	CategoryLifestyle,
}

type Influencer struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Handle          string          `json:"handle"`
	Email           *string         `json:"email"`
	Category        string          `json:"category"`
	Followers       int             `json:"followers"`
	EngagementRate  decimal.Decimal `json:"engagementRate"`
	RatePerPost     decimal.Decimal `json:"ratePerPost"`
	ProfileImageURL *string         `json:"profileImageUrl"`
	Bio             *string         `json:"bio"`
	IsVerified      bool            `json:"isVerified"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type InfluencerFilters struct {
	Category     string
	MinFollowers *int
	MaxFollowers *int
	Search       string
}

// HasCategory indica se o filtro de categoria deve ser aplicado
func (f InfluencerFilters) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// Match avalia todos os predicados do filtro (AND) para um influenciador
func (f InfluencerFilters) Match(inf *Influencer) bool {
	if f.HasCategory() && inf.Category != f.Category {
		return false
	}

	if f.MinFollowers != nil && inf.Followers < *f.MinFollowers {
		return false
	}

	if f.MaxFollowers != nil && inf.Followers > *f.MaxFollowers {
		return false
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(inf.Name), search) &&
			!strings.Contains(strings.ToLower(inf.Handle), search) {
			return false
		}
	}

	return true
}

type CreateInfluencerRequest struct {
	Name            string          `json:"name" validate:"required"`
	Handle          string          `json:"handle" validate:"required"`
	Email           *string         `json:"email" validate:"omitempty,email"`
	Category        string          `json:"category" validate:"required"`
	Followers       int             `json:"followers" validate:"gte=0"`
	EngagementRate  decimal.Decimal `json:"engagementRate" validate:"gte=0,lte=100"`
	RatePerPost     decimal.Decimal `json:"ratePerPost" validate:"gte=0"`
	ProfileImageURL *string         `json:"profileImageUrl" validate:"omitempty,url"`
	Bio             *string         `json:"bio"`
	IsVerified      bool            `json:"isVerified"`
}

type UpdateInfluencerRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1"`
	Handle          *string          `json:"handle" validate:"omitempty,min=1"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Category        *string          `json:"category" validate:"omitempty,min=1"`
	Followers       *int             `json:"followers" validate:"omitempty,gte=0"`
	EngagementRate  *decimal.Decimal `json:"engagementRate" validate:"omitempty,gte=0,lte=100"`
	RatePerPost     *decimal.Decimal `json:"ratePerPost" validate:"omitempty,gte=0"`
	ProfileImageURL *string          `json:"profileImageUrl" validate:"omitempty,url"`
	Bio             *string          `json:"bio"`
	IsVerified      *bool            `json:"isVerified"`
}

// Apply aplica o patch sobre o influenciador. UpdatedAt é responsabilidade de quem persiste.
func (r *UpdateInfluencerRequest) Apply(inf *Influencer) {
	if r.Name != nil {
		inf.Name = *r.Name
	}
	if r.Handle != nil {
		inf.Handle = *r.Handle
	}
	if r.Email != nil {
		inf.Email = r.Email
	}
	if r.Category != nil {
		inf.Category = *r.Category
	}
	if r.Followers != nil {
		inf.Followers = *r.Followers
	}
	if r.EngagementRate != nil {
		inf.EngagementRate = *r.EngagementRate
	}
	if r.RatePerPost != nil {
		inf.RatePerPost = *r.RatePerPost
	}
	if r.ProfileImageURL != nil {
		inf.ProfileImageURL = r.ProfileImageURL
	}
	if r.Bio != nil {
		inf.Bio = r.Bio
	}
	if r.IsVerified != nil {
		inf.IsVerified = *r.IsVerified
	}
}
