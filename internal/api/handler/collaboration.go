package handler

import (
	"net/http"

	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
)

func ListCollaborations(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		campaignID, err := utils.OptionalInt(query, "campaignId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		influencerID, err := utils.OptionalInt(query, "influencerId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		collaborations, err := service.GetCollaborations(r.Context(), campaignID, influencerID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar colaborações")
			return
		}

		writeJSON(w, http.StatusOK, collaborations)
	}
}

func CreateCollaboration(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCollaborationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		collaboration, err := service.CreateCollaboration(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar colaboração")
			return
		}

		writeJSON(w, http.StatusCreated, collaboration)
	}
}

func UpdateCollaboration(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.UpdateCollaborationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		collaboration, err := service.UpdateCollaboration(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar colaboração")
			return
		}

		writeJSON(w, http.StatusOK, collaboration)
	}
}
