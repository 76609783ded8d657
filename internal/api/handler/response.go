package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influence-hub-api/internal/usecases/managing"
	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/log"
	"github.com/vfg2006/influence-hub-api/pkg/utils"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz o erro do serviço para o código da API.
// Erros sem código conhecido viram erro interno com a mensagem genérica.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var managingErr *managing.ManagingError
	if errors.As(err, &managingErr) && managingErr.Code != "" {
		if errors.Is(err, managing.ErrStorage) {
			log.ForContext(r.Context()).WithError(err).Error(message)
			apiErrors.WriteError(w, managingErr.Code, message, nil)
			return
		}

		apiErrors.WriteError(w, managingErr.Code, managingErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// pathID lê e valida o parâmetro de rota informado
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := utils.ParseID(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return 0, false
	}

	return id, true
}

// decodeBody decodifica o JSON da requisição; corpo inválido responde 400
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := utils.DecodeJSON(r.Body, dest); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}
