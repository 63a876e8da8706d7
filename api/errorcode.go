package api

import "github.com/resqlink/resqlink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid admin credentials",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrRequestNotExist.Error(),
		1101: store.ErrInvalidTransition.Error(),
		1102: store.ErrMultipleRequestMade.Error(),
		1103: "unknown request status",
		1104: "unknown category",
		1105: "unknown urgency level",

		1200: "unknown background task",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAdminCredentials    = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorRequestNotExist     = errorJSON(1100)
	errorInvalidTransition   = errorJSON(1101)
	errorMultipleRequestMade = errorJSON(1102)
	errorUnknownStatus       = errorJSON(1103)
	errorUnknownCategory     = errorJSON(1104)
	errorUnknownUrgency      = errorJSON(1105)

	errorUnknownTask = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
