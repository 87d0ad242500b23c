package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes the envelope all handlers share. Errors passed as data
// are remapped to the right status: validation failures keep their structured
// field list, storage failures are flattened to a generic message so internal
// detail never leaks.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			status = http.StatusBadRequest
			data = verr
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
			data = err.Error()
		case errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrInvalidToken):
			status = http.StatusUnauthorized
			data = err.Error()
		case errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
			data = err.Error()
		case status >= http.StatusInternalServerError:
			data = domain.ErrInternalServerError.Error()
		default:
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
