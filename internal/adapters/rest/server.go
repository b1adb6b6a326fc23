package rest

import (
	"context"
	"net/http"
	"slices"

	"agency-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Handlers struct {
	Clients    *ClientHandler
	Properties *PropertyHandler
	Requests   *RequestHandler
	Reports    *ReportHandler
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, handlers Handlers, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: newRouter(cfg, handlers, baseLogger),
		},
		logger: baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

func newRouter(cfg ServerConfig, h Handlers, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceHeader},
		ExposedHeaders:   []string{traceHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	}))

	r.Get("/health", Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", Health)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Clients.ListClients)
			r.Post("/", h.Clients.CreateClient)

			// отчеты до /{clientID}
			r.Get("/sellers", h.Reports.SellersByPeriod)
			r.Get("/top-by-request-type", h.Reports.TopClientsByRequestType)
			r.Get("/min-request-amount", h.Reports.ClientsWithMinAmount)
			r.Get("/by-property-type", h.Reports.ClientsByPropertyType)

			r.Get("/{clientID}", h.Clients.GetClient)
			r.Put("/{clientID}", h.Clients.UpdateClient)
			r.Delete("/{clientID}", h.Clients.DeleteClient)
			r.Get("/{clientID}/requests", h.Clients.GetClientRequests)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Properties.ListProperties)
			r.Post("/", h.Properties.CreateProperty)
			r.Get("/{propertyID}", h.Properties.GetProperty)
			r.Put("/{propertyID}", h.Properties.UpdateProperty)
			r.Delete("/{propertyID}", h.Properties.DeleteProperty)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.Requests.ListRequests)
			r.Post("/", h.Requests.CreateRequest)
			r.Get("/count-by-property-type", h.Reports.RequestCountByPropertyType)
			r.Get("/{requestID}", h.Requests.GetRequest)
			r.Put("/{requestID}", h.Requests.UpdateRequest)
			r.Delete("/{requestID}", h.Requests.DeleteRequest)
			r.Get("/{requestID}/client", h.Requests.GetRequestClient)
			r.Get("/{requestID}/property", h.Requests.GetRequestProperty)
		})
	})

	return r
}

// Health - проверка живости процесса, без обращения к хранилищу.
func Health(w http.ResponseWriter, _ *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Handler отдает собранный роутер (для тестов и встраивания).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start блокируется до остановки сервера. После Stop возвращает http.ErrServerClosed.
func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
