package memory

import (
	"github.com/vfg2006/influence-hub-api/internal/domain"
)

// clonePtr copia o valor apontado; o store nunca compartilha ponteiros com quem chama
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u *domain.User) domain.User {
	out := *u
	out.Email = clonePtr(u.Email)
	out.FirstName = clonePtr(u.FirstName)
	out.LastName = clonePtr(u.LastName)
	out.ProfileImageURL = clonePtr(u.ProfileImageURL)
	return out
}

func cloneInfluencer(inf *domain.Influencer) domain.Influencer {
	out := *inf
	out.Email = clonePtr(inf.Email)
	out.ProfileImageURL = clonePtr(inf.ProfileImageURL)
	out.Bio = clonePtr(inf.Bio)
	return out
}

func cloneCampaign(c *domain.Campaign) domain.Campaign {
	out := *c
	out.Description = clonePtr(c.Description)
	out.StartDate = clonePtr(c.StartDate)
	out.EndDate = clonePtr(c.EndDate)
	out.TargetAudience = clonePtr(c.TargetAudience)
	out.Goals = clonePtr(c.Goals)
	return out
}

func cloneCollaboration(c *domain.Collaboration) domain.Collaboration {
	out := *c
	out.AgreedRate = clonePtr(c.AgreedRate)
	out.Deliverables = clonePtr(c.Deliverables)
	out.ActualReach = clonePtr(c.ActualReach)
	out.ActualEngagement = clonePtr(c.ActualEngagement)
	out.CompletedAt = clonePtr(c.CompletedAt)
	return out
}

func cloneAnalytics(a *domain.Analytics) domain.Analytics {
	out := *a
	out.CollaborationID = clonePtr(a.CollaborationID)
	return out
}
