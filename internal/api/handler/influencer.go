package handler

import (
	"net/http"

	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
)

// ListInfluencers lista influenciadores com filtros de categoria, faixa de seguidores e busca
func ListInfluencers(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		minFollowers, err := utils.OptionalInt(query, "minFollowers")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		maxFollowers, err := utils.OptionalInt(query, "maxFollowers")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters := domain.InfluencerFilters{
			Category:     query.Get("category"),
			MinFollowers: minFollowers,
			MaxFollowers: maxFollowers,
			Search:       query.Get("search"),
		}

		influencers, err := service.GetInfluencers(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar influenciadores")
			return
		}

		writeJSON(w, http.StatusOK, influencers)
	}
}

func GetInfluencer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		influencer, err := service.GetInfluencer(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar influenciador")
			return
		}

		if influencer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInfluencerNotFound, "Influenciador não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, influencer)
	}
}

func CreateInfluencer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateInfluencerRequest
		if !decodeBody(w, r, &request) {
			return
		}

		influencer, err := service.CreateInfluencer(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar influenciador")
			return
		}

		writeJSON(w, http.StatusCreated, influencer)
	}
}

func UpdateInfluencer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.UpdateInfluencerRequest
		if !decodeBody(w, r, &request) {
			return
		}

		influencer, err := service.UpdateInfluencer(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar influenciador")
			return
		}

		writeJSON(w, http.StatusOK, influencer)
	}
}

// DeleteInfluencer remove o influenciador; ID inexistente também responde 204
func DeleteInfluencer(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteInfluencer(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover influenciador")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCategories retorna as categorias conhecidas para os filtros do dashboard
func ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := make([]string, 0, len(domain.Categories)+1)
		categories = append(categories, domain.AllCategories)
		categories = append(categories, domain.Categories...)

		writeJSON(w, http.StatusOK, categories)
	}
}
