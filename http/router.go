package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires the lease endpoints. Calculation routes are rate limited
// per client IP; every route is logged and CORS-enabled.
func NewRouter(
	leaseHandler *LeaseHandler,
	limiter *RateLimiter,
	allowedOrigins []string,
) http.Handler {

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.Handle(
		"/lease/calculate",
		RateLimitMiddleware(limiter, http.HandlerFunc(leaseHandler.CalculateLease)),
	).Methods(http.MethodPost)

	r.Handle(
		"/lease/calculate/form",
		RateLimitMiddleware(limiter, http.HandlerFunc(leaseHandler.CalculateLeaseForm)),
	).Methods(http.MethodPost)

	r.HandleFunc("/lease/calculations/{id}", leaseHandler.GetCalculation).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{"Location", requestIDHeader},
	})

	return LoggingMiddleware(c.Handler(r))
}
