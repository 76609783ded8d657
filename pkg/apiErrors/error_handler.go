package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrAlreadyExists       = "VAL_004" // Registro com campo único já existe
	ErrInvalidReference    = "VAL_005" // Referência para registro inexistente
	ErrInvalidTransition   = "VAL_006" // Transição de status não permitida

	// Erros de recurso (4000-4999)
	ErrUserNotFound          = "NF_001" // Usuário não encontrado
	ErrInfluencerNotFound    = "NF_002" // Influenciador não encontrado
	ErrCampaignNotFound      = "NF_003" // Campanha não encontrada
	ErrCollaborationNotFound = "NF_004" // Colaboração não encontrada
	ErrRouteNotFound         = "NF_005" // Rota não encontrada

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrDataIntegrity     = "SRV_003" // Registro relacionado ausente
	ErrSchedulerBusy     = "SRV_004" // Job já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrAlreadyExists:         http.StatusBadRequest,
	ErrInvalidReference:      http.StatusBadRequest,
	ErrInvalidTransition:     http.StatusBadRequest,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInfluencerNotFound:    http.StatusNotFound,
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrCollaborationNotFound: http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrDataIntegrity:         http.StatusInternalServerError,
	ErrSchedulerBusy:         http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
