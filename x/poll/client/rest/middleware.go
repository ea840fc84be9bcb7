package rest

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/utils/funcs"
)

// HeaderRequestID carries the id of a request. A fresh id is assigned if the client does not send a valid uuid.
const HeaderRequestID = "X-Request-Id"

// RequestID assigns an id to every request and echoes it in the response
func RequestID(logger log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(HeaderRequestID))
			if err != nil {
				id = uuid.New()
			}
			r.Header.Set(HeaderRequestID, id.String())

			w.Header().Set(HeaderRequestID, id.String())
			logger.Debug("handling request", "request_id", id.String(), "method", r.Method, "path", r.URL.Path)

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter limits the request rate of every caller separately.
// Callers are identified by their identity header, or by their remote address if the header is missing or invalid.
// Only the most recently seen callers are tracked, the least recently seen one is forgotten first.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewRateLimiter returns a new rate limiter allowing limit requests per second with the given burst per caller,
// tracking at most maxCallers callers. A limit of zero disables rate limiting.
func NewRateLimiter(limit float64, burst int, maxCallers int) *RateLimiter {
	l := &RateLimiter{
		limit: rate.Limit(limit),
		burst: burst,
	}

	if l.limit != 0 {
		l.limiters = funcs.Must(lru.New[string, *rate.Limiter](maxCallers))
	}

	return l
}

// Allow returns true if the given caller may send another request now
func (l *RateLimiter) Allow(caller string) bool {
	if l.limit == 0 {
		return true
	}

	l.mu.Lock()
	limiter, ok := l.limiters.Get(caller)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(caller, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Callers returns the number of callers currently tracked
func (l *RateLimiter) Callers() int {
	if l.limiters == nil {
		return 0
	}

	return l.limiters.Len()
}

// Middleware rejects requests of callers that exceed their rate
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := r.Header.Get(HeaderCallerIdentity)
		if utils.ValidateString(caller) != nil {
			caller = remoteHost(r)
		}

		if !l.Allow(caller) {
			writeError(w, http.StatusTooManyRequests, fmt.Sprintf("rate limit exceeded for %s", caller))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// Metrics counts requests by route and status code
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics registers the REST metrics with the given registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "polls",
		Subsystem: "rest",
		Name:      "requests_total",
		Help:      "Number of REST requests by route and status code",
	}, []string{"route", "code"})
	registerer.MustRegister(requests)

	return &Metrics{requests: requests}
}

// Middleware records every request
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}

		m.requests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
	})
}

// statusRecorder remembers the status code written by a handler. It can be hijacked so websocket upgrades keep working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}

	r.status = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}
