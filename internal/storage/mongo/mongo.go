package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the single client connection and the two collections the rest of
// the service works with. Connect is called once at startup; any failure there
// is fatal to the process.
type Store struct {
	client  *mongo.Client
	lessons *LessonRepository
	orders  *OrderRepository
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(dbName)
	return &Store{
		client:  client,
		lessons: NewLessonRepository(db),
		orders:  NewOrderRepository(db),
	}, nil
}

func (s *Store) Lessons() *LessonRepository { return s.lessons }
func (s *Store) Orders() *OrderRepository   { return s.orders }

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
