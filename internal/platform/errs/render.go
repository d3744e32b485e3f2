package errs

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type validationBody struct {
	Errors []FieldError `json:"errors"`
}

type errorBody struct {
	Message string `json:"message"`
	Code    Kind   `json:"code"`
}

// HTTPErrorHandler renders application errors and echo HTTP errors as JSON.
// Validation errors carry a field-level error list; everything else gets a
// message and machine-readable code. Install on the echo instance at startup.
func HTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var body interface{} = errorBody{Message: "internal server error", Code: KindInternal}

		if appErr := As(err); appErr != nil {
			status = appErr.HTTPStatus()
			if appErr.Kind == KindValidation && len(appErr.Fields) > 0 {
				body = validationBody{Errors: appErr.Fields}
			} else {
				body = errorBody{Message: appErr.Message, Code: appErr.Kind}
			}
			if appErr.Kind == KindInternal || appErr.Kind == KindTransient {
				log.Error().Err(appErr.Err).Str("path", c.Path()).Msg(appErr.Message)
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			body = errorBody{Message: msg, Code: kindForStatus(status)}
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}
