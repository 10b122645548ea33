package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afterschool/lessons-api/internal/domain"
)

type LessonRepository struct {
	coll *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{coll: db.Collection("lessons")}
}

// List returns every lesson document. No ordering guarantee, no pagination.
func (r *LessonRepository) List(ctx context.Context) ([]domain.Lesson, error) {
	return r.find(ctx, bson.M{})
}

// Search returns lessons matching q per searchFilter. The caller is expected
// to have trimmed q and routed empty queries to List.
func (r *LessonRepository) Search(ctx context.Context, q string) ([]domain.Lesson, error) {
	return r.find(ctx, searchFilter(q))
}

func (r *LessonRepository) find(ctx context.Context, filter bson.M) ([]domain.Lesson, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	lessons := []domain.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// Update applies a partial $set merge; fields not named stay untouched.
// Returns domain.ErrNotFound when no document has the given id.
func (r *LessonRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
