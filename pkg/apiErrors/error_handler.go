package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de acesso a dados (1000-1999)
	ErrStoreUnavailable = "DATA_001" // Datastore inacessível
	ErrMalformedBatch   = "DATA_002" // Lote com linhas malformadas demais

	// Erros de validação (2000-2999)
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrUnknownDimension = "VAL_002" // Dimensão ou campo não suportado

	// Erros do modelo baseline (3000-3999)
	ErrModelNotTrained  = "MDL_001" // Nenhum modelo treinado disponível
	ErrModelPersistence = "MDL_002" // Falha ao salvar/carregar artefato
	ErrRetrainConflict  = "MDL_003" // Retreino já em andamento

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo (IA de insights)
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrStoreUnavailable: http.StatusBadGateway,
	ErrMalformedBatch:   http.StatusUnprocessableEntity,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnknownDimension: http.StatusBadRequest,
	ErrModelNotTrained:  http.StatusNotFound,
	ErrModelPersistence: http.StatusInternalServerError,
	ErrRetrainConflict:  http.StatusConflict,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrExternalService:  http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
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
