package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/logger"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the bare response body.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends {"error": msg} with the status carried by err.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Error{Error: err.Error()})
}

// WithUnexpectedError logs cause with its stack and answers 500 with the generic
// message, leaving cause out of the body.
func WithUnexpectedError(writer http.ResponseWriter, cause any, message string) {
	err, ok := cause.(error)
	if !ok {
		err = fmt.Errorf("%v", cause)
	}

	logger.ErrorWithStack(err, message)

	WithError(writer, failure.InternalErrorFromString(message))
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err, "failed to encode response")

		code = http.StatusInternalServerError
		body = []byte(`{"error":"Internal Server Error"}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err, "failed to write response")
	}
}
