// Package metrics exposes prometheus instrumentation for the bot and the
// backend API client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequests counts outbound backend calls by resource group and
	// outcome. Status is the numeric HTTP status, "0" for transport
	// failures and "denied" for calls rejected before the network for a
	// missing token.
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tutorbot_api_requests_total",
		Help: "Outbound tutoring backend API requests.",
	}, []string{"resource", "status"})

	// Updates counts processed Telegram updates by type.
	Updates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tutorbot_updates_total",
		Help: "Processed Telegram updates.",
	}, []string{"type"})
)

// Handler serves /metrics plus a trivial liveness endpoint.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
