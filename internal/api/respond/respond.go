// Package respond escreve as respostas JSON da API: envelope {data} no sucesso e
// {error:{code,message,details}} na falha.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/pkg/logger"
)

// Envelope é o corpo de sucesso dos endpoints de recurso único.
type Envelope struct {
	Data interface{} `json:"data"`
}

// JSON serializa v com o status informado.
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// CollectionPath é o caminho da coleção sem a barra final, base dos links de paginação
// e do header Location.
func CollectionPath(r *http.Request) string {
	return strings.TrimRight(r.URL.Path, "/")
}

// Handle processa o resultado do serviço: em sucesso escreve body com successStatus
// (204 não tem corpo), em erro delega para Error.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, body interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}

	if successStatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if jsonErr := JSON(w, successStatus, body); jsonErr != nil {
		log.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// Error traduz err para status + envelope de erro. Erros 5xx são registrados com a causa;
// o cliente recebe apenas a mensagem genérica.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, body := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor em %s %s", r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, body.Code), map[string]interface{}{"path": r.URL.Path})
	}

	if jsonErr := JSON(w, status, domain.ErrorResponse{Error: body}); jsonErr != nil {
		log.Error("Falha ao codificar JSON de erro", jsonErr)
	}
}
