package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ErrorResponse abstracts all API error responses to the user.
//
// It implements `error` so handlers can return one directly and let the
// echo error handler do the translation; handlers never format error
// JSON themselves.
type ErrorResponse interface {
	error

	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (a *APIError) Code() int {
	return a.Status
}

func (a *APIError) Error() string {
	return a.Message
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")
	NotFoundError       = NewSimple(404, "Resource not found")

	CompanyNotFoundError     = NewSimple(404, "Company does not exist")
	CompanyCodeNotFoundError = NewSimple(404, "Company code does not exist")
	DuplicateCompanyError    = NewSimple(400, "Company code already exists")
	InvoiceNotFoundError     = NewSimple(404, "Invoice does not exist")
)

// HTTPErrorHandler is the single translator from failures to the
// uniform `{"error": {"message": ..., "status": ...}}` body. It is
// installed on the echo instance at startup; everything a handler
// returns (typed API errors, echo routing errors, anything else)
// funnels through here.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var resp *APIError

	var apierr ErrorResponse
	var httperr *echo.HTTPError

	switch {
	case errors.As(err, &apierr):
		resp = &APIError{Message: apierr.Error(), Status: apierr.Code()}

	case errors.As(err, &httperr):
		// Unmatched routes, method-not-allowed, body-limit rejections.
		resp = &APIError{Message: fmt.Sprint(httperr.Message), Status: httperr.Code}

	default:
		resp = InternalServerError
	}

	if resp.Status >= http.StatusInternalServerError {
		log.Errorf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if jsonerr := c.JSON(resp.Status, echo.Map{"error": resp}); jsonerr != nil {
		log.Errorf("failed to write error response: %v", jsonerr)
	}
}

// FromValidationError flattens validator problems into a single
// 400 message, e.g. "name: This field is required".
func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return MalformedJSONError
	}

	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems = append(problems, field+": This field is required")
		case "min":
			problems = append(problems, field+": Value is too short, min: "+fe.Param())
		case "max":
			problems = append(problems, field+": Value is too long, max: "+fe.Param())
		case "gt":
			problems = append(problems, field+": Value must be greater than "+fe.Param())
		default:
			problems = append(problems, field+": Invalid value provided")
		}
	}

	return NewSimple(http.StatusBadRequest, strings.Join(problems, "; "))
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
