package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"forbidden-domains/internal/registry"
	grpcTransport "forbidden-domains/internal/transport/grpc"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
)

// MaxRegistryAge is how old the loaded snapshot may get before /readyz fails.
const MaxRegistryAge = 48 * time.Hour

type checkResponse struct {
	Domain    string `json:"domain"`
	Forbidden bool   `json:"forbidden"`
	MatchedBy string `json:"matched_by,omitempty"`
}

// NewHandler builds the HTTP API on top of the checker:
//
//	GET /api/v1/check?domain=<name>
//	GET /healthz
//	GET /readyz
func NewHandler(checker *grpcTransport.Server, holder *registry.Holder) (http.Handler, error) {
	gwMux := runtime.NewServeMux()
	marshaler := &runtime.JSONPb{}

	err := gwMux.HandlePath(http.MethodGet, "/api/v1/check", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		query, matched, forbidden, err := checker.Lookup(r.Context(), r.URL.Query().Get("domain"))
		if err != nil {
			runtime.HTTPError(r.Context(), gwMux, marshaler, w, r, err)
			return
		}

		resp := checkResponse{Domain: query.String(), Forbidden: forbidden}
		if forbidden {
			resp.MatchedBy = matched.String()
		}

		body, err := marshaler.Marshal(resp)
		if err != nil {
			runtime.HTTPError(r.Context(), gwMux, marshaler, w, r, err)
			return
		}

		w.Header().Set("Content-Type", marshaler.ContentType(resp))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gwMux)

	// /healthz — basic liveness check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/readyz", readyzHandler(holder, MaxRegistryAge))

	return mux, nil
}

// readyzHandler is ready once a snapshot has been loaded and is not stale.
func readyzHandler(h *registry.Holder, maxAge time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Loaded() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not loaded"))
			return
		}

		age := time.Since(h.Get().UpdatedAt)
		if age < 0 || age > maxAge {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("stale"))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
}

func RunHTTPGatewayServer(ctx context.Context, httpAddr string, checker *grpcTransport.Server, holder *registry.Holder) error {
	handler, err := NewHandler(checker, holder)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown of the HTTP server when the parent context is canceled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http gateway: graceful shutdown error: %v", err)
		}
	}()

	log.Printf("HTTP gateway listening on %s", httpAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
