package repository

import (
	"context"
	"errors"
	"time"

	"helpdesk/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ITicketRepository defines ticket persistence. Find takes the
// caller-built visibility filter; the repository never widens or
// narrows it.
type ITicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Find(ctx context.Context, filter bson.M) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Ticket, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// TicketRepository implements ticket persistence
type TicketRepository struct {
	collection *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) ITicketRepository {
	return &TicketRepository{collection: db.Collection("tickets")}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ticket.ID = oid
	}
	return ticket, nil
}

func (r *TicketRepository) Find(ctx context.Context, filter bson.M) ([]*model.Ticket, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []*model.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return ticket, nil
}

// UpdateByID atomically applies a partial $set and returns the
// updated ticket, or nil if the id does not resolve. Concurrent
// updates to the same ticket are last-write-wins per field.
func (r *TicketRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Ticket, error) {
	fields["updatedAt"] = time.Now()
	after := options.After
	var ticket *model.Ticket
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}
