package handler

import (
	"net/http"

	"github.com/vfg2006/influence-hub-api/internal/api/handler/router"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Users(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/api/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
		{
			Path:    "/api/users/:id",
			Method:  http.MethodPut,
			Handler: UpdateUser(service),
		},
	}
}

func Influencers(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/influencers",
			Method:  http.MethodGet,
			Handler: ListInfluencers(service),
		},
		{
			Path:    "/api/influencers",
			Method:  http.MethodPost,
			Handler: CreateInfluencer(service),
		},
		{
			Path:    "/api/influencers/:id",
			Method:  http.MethodGet,
			Handler: GetInfluencer(service),
		},
		{
			Path:    "/api/influencers/:id",
			Method:  http.MethodPut,
			Handler: UpdateInfluencer(service),
		},
		{
			Path:    "/api/influencers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInfluencer(service),
		},
		{
			Path:    "/api/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(),
		},
	}
}

func Campaigns(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodPatch,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
	}
}

func Collaborations(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/collaborations",
			Method:  http.MethodGet,
			Handler: ListCollaborations(service),
		},
		{
			Path:    "/api/collaborations",
			Method:  http.MethodPost,
			Handler: CreateCollaboration(service),
		},
		{
			Path:    "/api/collaborations/:id",
			Method:  http.MethodPut,
			Handler: UpdateCollaboration(service),
		},
	}
}

func Analytics(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/:campaignId",
			Method:  http.MethodGet,
			Handler: GetAnalytics(service),
		},
		{
			Path:    "/api/analytics",
			Method:  http.MethodPost,
			Handler: CreateAnalytics(service),
		},
		{
			Path:    "/api/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
		{
			Path:    "/api/seed",
			Method:  http.MethodPost,
			Handler: SeedData(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
