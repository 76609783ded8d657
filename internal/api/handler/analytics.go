package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
)

// GetAnalytics retorna a série de métricas da campanha
func GetAnalytics(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID, ok := pathID(w, r, "campaignId")
		if !ok {
			return
		}

		entries, err := service.GetAnalytics(r.Context(), campaignID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar métricas")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func CreateAnalytics(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateAnalyticsRequest
		if !decodeBody(w, r, &request) {
			return
		}

		entry, err := service.CreateAnalytics(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar métrica")
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// GetDashboardStats retorna os indicadores agregados, opcionalmente restritos às campanhas do usuário
func GetDashboardStats(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := utils.OptionalInt(r.URL.Query(), "userId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.GetDashboardStats(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// SeedData popula a base com dados de demonstração; repetir a chamada não duplica dados
func SeedData(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SeedData")

		result, err := service.SeedData(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao popular dados de demonstração")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
