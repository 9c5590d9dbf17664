// Package validate decodifica e valida as entradas HTTP, traduzindo as falhas do
// validator em ValidationError com um detalhe por campo.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
)

const invalidRequest = "Invalid request data"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os detalhes usam o nome público do campo (json ou query), não o nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// integer aceita qualquer inteiro com sinal; o ajuste de limites fica com a paginação.
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	return v
}

// Struct valida s e devolve um ValidationError com os detalhes, ou nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("Falha ao validar a requisição.", err)
	}

	details := make([]domain.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, domain.ErrorDetail{Field: fe.Field(), Message: message(fe)})
	}
	return apperror.NewValidationError(invalidRequest, details...)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "number":
		return fmt.Sprintf("%s must be a non-negative integer", field)
	case "integer":
		return fmt.Sprintf("%s must be an integer", field)
	case "numeric":
		return fmt.Sprintf("%s must be a number", field)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}

// DecodeJSON lê o corpo JSON em dst e o valida. Campos desconhecidos são ignorados
// (ex.: um "status" enviado para produtos), mas o corpo deve conter um único valor JSON.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.NewValidationError("Malformed JSON body")
	}
	return Struct(dst)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperror.NewValidationError("Request body is required")
	case errors.As(err, &typeErr):
		return apperror.NewFieldError(typeErr.Field, fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	default:
		return apperror.NewValidationError("Malformed JSON body")
	}
}

// ID valida um identificador vindo do caminho da URL.
func ID(raw string) error {
	if err := validate.Var(raw, "required,uuid"); err != nil {
		return apperror.NewFieldError("id", "id must be a valid UUID")
	}
	return nil
}

// Query preenche os campos string de dst (tag `query`) a partir de values e os valida.
func Query(values url.Values, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return apperror.NewInternalError("Destino de query inválido.", fmt.Errorf("%T", dst))
	}

	elem := rv.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		key, _, _ := strings.Cut(field.Tag.Get("query"), ",")
		if key == "" || field.Type.Kind() != reflect.String {
			continue
		}
		elem.Field(i).SetString(strings.TrimSpace(values.Get(key)))
	}

	return Struct(dst)
}
