package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/afterschool/lessons-api/internal/application/service"
	"github.com/afterschool/lessons-api/internal/domain"
	"github.com/afterschool/lessons-api/internal/observability"
)

type LessonService interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	Search(ctx context.Context, q string) ([]domain.Lesson, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type OrderService interface {
	Create(ctx context.Context, req service.CreateOrder) (primitive.ObjectID, error)
}

type Server struct {
	lessons LessonService
	orders  OrderService

	imageDir    string
	corsOrigins []string

	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(lessons LessonService, orders OrderService, imageDir string, corsOrigins []string, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		lessons:     lessons,
		orders:      orders,
		imageDir:    imageDir,
		corsOrigins: corsOrigins,
		router:      chi.NewRouter(),
		logger:      logger,
		metrics:     metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(
		cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}),
		RequestLogger(s.logger),
		ServerTiming(s.metrics),
	)

	s.router.Get("/", s.health)
	s.router.Get("/images/{filename}", s.getImage)
	s.router.Get("/lessons", s.getLessons)
	s.router.Get("/search", s.searchLessons)
	s.router.Post("/orders", s.createOrder)
	s.router.Put("/lessons/{id}", s.updateLesson)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Lessons API running",
	})
}

func (s *Server) getImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	// The path param must stay a bare filename; anything that could escape
	// the image directory is treated as absent.
	if filename == "" || strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	path := filepath.Join(s.imageDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) getLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := s.lessons.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch lessons")
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (s *Server) searchLessons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	lessons, err := s.lessons.Search(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to search lessons")
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	id, err := s.orders.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) || errors.Is(err, domain.ErrBadLessonID) {
			writeError(w, http.StatusBadRequest, "Invalid order payload")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save order")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Order created",
		"orderId": id.Hex(),
	})
}

func (s *Server) updateLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid update payload")
		return
	}

	err := s.lessons.Update(r.Context(), id, fields)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Lesson updated"})
	case errors.Is(err, domain.ErrNoFields):
		writeError(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, domain.ErrBadLessonID):
		writeError(w, http.StatusBadRequest, "Invalid lesson id")
	case errors.Is(err, domain.ErrNotNumeric):
		writeError(w, http.StatusBadRequest, "Invalid value for price or space")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Lesson not found")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to update lesson")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}
