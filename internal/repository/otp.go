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

// IOTPRepository defines one-time passcode persistence
type IOTPRepository interface {
	Create(ctx context.Context, otp *model.OTP) (*model.OTP, error)
	FindLatest(ctx context.Context, email string, issuedAfter time.Time) (*model.OTP, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteExpired(ctx context.Context, issuedBefore time.Time) (int64, error)
}

// OTPRepository implements OTP persistence
type OTPRepository struct {
	collection *mongo.Collection
}

func NewOTPRepository(db *mongo.Database) IOTPRepository {
	return &OTPRepository{collection: db.Collection("otps")}
}

func (r *OTPRepository) Create(ctx context.Context, otp *model.OTP) (*model.OTP, error) {
	otp.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, otp)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		otp.ID = oid
	}
	return otp, nil
}

// FindLatest returns the most recently issued record for the email
// created after issuedAfter, or nil when none qualifies. The time
// window is what makes expired codes unusable; physical deletion is
// an optimization, not the mechanism.
func (r *OTPRepository) FindLatest(ctx context.Context, email string, issuedAfter time.Time) (*model.OTP, error) {
	filter := bson.M{
		"email":     email,
		"createdAt": bson.M{"$gte": issuedAfter},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var otp *model.OTP
	err := r.collection.FindOne(ctx, filter, opts).Decode(&otp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return otp, nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteExpired purges records issued before the cutoff
func (r *OTPRepository) DeleteExpired(ctx context.Context, issuedBefore time.Time) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": issuedBefore}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
