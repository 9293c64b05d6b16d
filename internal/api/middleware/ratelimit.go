package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/ratelimit"
	"github.com/rs/zerolog"
)

// RateLimit rejects clients over quota with 429. A failing limiter lets the
// request through.
func RateLimit(limiter ratelimit.Limiter, logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		key := ClientKey(req.Request)

		decision, err := limiter.Allow(req.Request.Context(), key)
		if err != nil {
			logger.Warn().Err(err).Str("client", key).Msg("Rate limiter unavailable, allowing request")
			chain.ProcessFilter(req, resp)
			return
		}

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			resp.AddHeader("Retry-After", strconv.Itoa(seconds))
			WriteError(resp, http.StatusTooManyRequests, "Too many requests")
			return
		}

		chain.ProcessFilter(req, resp)
	}
}

// ClientKey identifies the caller by the first X-Forwarded-For hop, falling
// back to the connection's remote IP.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
