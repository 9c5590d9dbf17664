package domain

// ErrorResponse é o envelope padronizado de erro da API.
// @Description Envelope padronizado para respostas de erro na API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carrega o código legível por máquina e os detalhes por campo.
type ErrorBody struct {
	Code    string        `json:"code" example:"VALIDATION_ERROR"`
	Message string        `json:"message" example:"Invalid request data"`
	Details []ErrorDetail `json:"details"`
}

// ErrorDetail descreve a falha de um campo específico.
type ErrorDetail struct {
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"name is required"`
}
