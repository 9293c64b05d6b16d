package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HandleError writes err as the JSON error envelope with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	WriteError(resp, status, err.Error())
}

func WriteError(resp *restful.Response, status int, message string) {
	if err := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error: message,
		Code:  status,
	}); err != nil {
		log.Error().Err(err).Int("status", status).Msg("Failed to write error response")
	}
}
