package handler

import (
	"net/http"

	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
)

// ListCampaigns lista as campanhas com criador e colaborações, filtrando por usuário e status
func ListCampaigns(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		userID, err := utils.OptionalInt(query, "userId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns, err := service.GetCampaigns(r.Context(), userID, query.Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		campaign, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanha")
			return
		}

		if campaign == nil {
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func CreateCampaign(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

// UpdateCampaign atende PUT e PATCH com a mesma semântica de atualização parcial
func UpdateCampaign(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.UpdateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		campaign, err := service.UpdateCampaign(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
