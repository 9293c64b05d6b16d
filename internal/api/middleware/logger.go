package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	status := resp.StatusCode()
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	} else if status >= http.StatusBadRequest {
		event = log.Warn()
	}

	event.
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Str("remote", req.Request.RemoteAddr).
		Msg("HTTP request")
}

func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			WriteError(resp, http.StatusInternalServerError, "Internal server error")
		}
	}()

	chain.ProcessFilter(req, resp)
}
