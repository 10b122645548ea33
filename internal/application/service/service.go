package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/afterschool/lessons-api/internal/domain"
	"github.com/afterschool/lessons-api/internal/observability"
)

type LessonRepository interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	Search(ctx context.Context, q string) ([]domain.Lesson, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
}

// Lessons serves reads over the lessons collection and the single partial
// update used to adjust capacity after a purchase.
type Lessons struct {
	repo    LessonRepository
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewLessons(repo LessonRepository, logger *zap.Logger, metrics observability.Metrics) *Lessons {
	return &Lessons{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Lessons) List(ctx context.Context) ([]domain.Lesson, error) {
	t0 := time.Now()
	lessons, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Error while listing lessons", zap.Error(err))
		return nil, err
	}
	dbMs := convertToMs(t0)

	s.metrics.ObserveQuery(opList, dbMs)
	s.logger.Info("Lessons listed",
		zap.Int("count", len(lessons)),
		zap.Float64("db_ms", dbMs),
	)
	return lessons, nil
}

// Search with an empty or whitespace-only query behaves identically to List.
func (s *Lessons) Search(ctx context.Context, q string) ([]domain.Lesson, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}

	t0 := time.Now()
	lessons, err := s.repo.Search(ctx, q)
	if err != nil {
		s.logger.Error("Error while searching lessons",
			zap.String("query", q),
			zap.Error(err),
		)
		return nil, err
	}
	dbMs := convertToMs(t0)

	s.metrics.ObserveQuery(opSearch, dbMs)
	s.logger.Info("Lessons searched",
		zap.String("query", q),
		zap.Int("count", len(lessons)),
		zap.Float64("db_ms", dbMs),
	)
	return lessons, nil
}

// Update applies a partial merge to one lesson. price and space are coerced to
// numbers before the write; other fields pass through as sent.
func (s *Lessons) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrBadLessonID, id)
	}
	if len(fields) == 0 {
		return domain.ErrNoFields
	}

	for _, k := range []string{"price", "space"} {
		v, ok := fields[k]
		if !ok {
			continue
		}
		n, err := coerceNumber(v)
		if err != nil {
			return fmt.Errorf("%w: %s", domain.ErrNotNumeric, k)
		}
		fields[k] = n
	}

	t0 := time.Now()
	if err := s.repo.Update(ctx, oid, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Lesson to update not found", zap.String("lesson_id", id))
			return err
		}
		s.logger.Error("Error while updating lesson",
			zap.String("lesson_id", id),
			zap.Error(err),
		)
		return err
	}
	dbMs := convertToMs(t0)

	s.metrics.ObserveUpdate(dbMs)
	s.logger.Info("Lesson updated",
		zap.String("lesson_id", id),
		zap.Int("fields", len(fields)),
		zap.Float64("db_ms", dbMs),
	)
	return nil
}

type CreateOrderItem struct {
	LessonID string `json:"lessonId"`
	Quantity int    `json:"quantity"`
}

type CreateOrder struct {
	Name  string            `json:"name"`
	Phone string            `json:"phone"`
	Items []CreateOrderItem `json:"items"`
}

// Orders validates and persists purchase records. Lesson ids are checked
// syntactically only; existence and remaining space are not verified, and the
// write is independent of any capacity adjustment the client makes afterwards.
type Orders struct {
	repo    OrderRepository
	logger  *zap.Logger
	metrics observability.Metrics
	now     func() time.Time
}

func NewOrders(repo OrderRepository, logger *zap.Logger, metrics observability.Metrics) *Orders {
	return &Orders{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *Orders) Create(ctx context.Context, req CreateOrder) (primitive.ObjectID, error) {
	if req.Name == "" || req.Phone == "" || len(req.Items) == 0 {
		return primitive.NilObjectID, domain.ErrInvalidPayload
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		oid, err := primitive.ObjectIDFromHex(it.LessonID)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrBadLessonID, it.LessonID)
		}
		items = append(items, domain.OrderItem{LessonID: oid, Quantity: it.Quantity})
	}

	order := &domain.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		Items:     items,
		CreatedAt: s.now().UTC(),
	}

	t0 := time.Now()
	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		s.logger.Error("Error while inserting order", zap.Error(err))
		return primitive.NilObjectID, err
	}
	dbMs := convertToMs(t0)

	s.metrics.ObserveInsert(dbMs)
	s.logger.Info("Order created",
		zap.String("order_id", id.Hex()),
		zap.Int("items", len(items)),
		zap.Float64("db_ms", dbMs),
	)
	return id, nil
}
