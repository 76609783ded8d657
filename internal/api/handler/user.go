package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/domain"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
)

// GetUser retorna o usuário pelo ID
func GetUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuário")
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um novo usuário
func CreateUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var request domain.CreateUserRequest
		if !decodeBody(w, r, &request) {
			return
		}

		user, err := service.CreateUser(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// UpdateUser atualiza parcialmente o usuário
func UpdateUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var request domain.UpdateUserRequest
		if !decodeBody(w, r, &request) {
			return
		}
		// o hash nunca vem do cliente
		request.PasswordHash = nil

		user, err := service.UpdateUser(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
