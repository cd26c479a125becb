package router

import (
	"database/sql"
	"net/http"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/db"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// New wires the database, repositories, services and handlers into the root
// HTTP handler. The returned *sql.DB is owned by the caller.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling) and apply the bootstrap schema
	conn, err := db.Open(cfg.DBConnectionString, cfg.Environment)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	if err := db.Migrate(conn); err != nil {
		logger.Error().Err(err).Msg("Failed to apply schema")
		return nil, nil, err
	}

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize OpenAI client (process-wide, injected once at startup)
	openAI := service.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// 4. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(conn)
	courseRepo := repository.NewCourseRepo(conn, logger)
	enrollmentRepo := repository.NewEnrollmentRepo(conn, logger)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour, logger)
	courseSvc := service.NewCourseService(courseRepo, enrollmentRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, logger)
	suggestionSvc := service.NewSuggestionService(courseRepo, openAI, logger)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, validate, logger)
	suggestionHandler := handler.NewSuggestionHandler(suggestionSvc, validate, logger)
	healthHandler := handler.NewHealthHandler(conn, logger)

	// 5. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// 6. Create ServeMux router and mount the API under /api
	apiMux := http.NewServeMux()
	authHandler.RegisterRoutes(apiMux)
	courseHandler.RegisterRoutes(apiMux, authMiddleware)
	enrollmentHandler.RegisterRoutes(apiMux, authMiddleware)
	suggestionHandler.RegisterRoutes(apiMux, authMiddleware)
	healthHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// Serve the generated swagger document
	mux.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("API Running Successfully"))
	})

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), conn, nil
}
