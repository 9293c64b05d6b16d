package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
)

const APIKeyHeader = "X-API-Key"

// Protected rejects requests that carry no configured token, either as
// "Authorization: Bearer <token>" or in the X-API-Key header. Paths listed in
// public skip the check.
func Protected(tokens []string, public ...string) restful.FilterFunction {
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		if _, ok := open[req.Request.URL.Path]; ok {
			chain.ProcessFilter(req, resp)
			return
		}

		token := requestToken(req.Request)
		if token == "" || !validToken(token, tokens) {
			WriteError(resp, http.StatusForbidden, "Invalid or missing API token")
			return
		}

		chain.ProcessFilter(req, resp)
	}
}

func requestToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, found := strings.Cut(auth, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(r.Header.Get(APIKeyHeader))
}

func validToken(token string, tokens []string) bool {
	match := 0
	for _, t := range tokens {
		match |= subtle.ConstantTimeCompare([]byte(token), []byte(t))
	}
	return match == 1
}
