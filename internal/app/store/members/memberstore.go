package memberstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/memberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no member matches the given identifier.
var ErrNotFound = errors.New("member not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

// Create inserts a new member, assigning its ID and timestamps.
// The owning user reference is stored as given; referential integrity
// against the users collection is not enforced here.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	m.ID = primitive.NewObjectID()
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = strings.TrimSpace(m.Phone)

	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// ListByOwner returns all members owned by the given user, most recently
// created first. The result is never nil, so an owner with no members
// serializes as an empty JSON array.
func (s *Store) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.Member{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetByPhone returns the first member with the given phone, or ErrNotFound.
// Member phones are not unique; with duplicates, "first" follows the
// store's natural order and is implementation-dependent.
func (s *Store) GetByPhone(ctx context.Context, phone string) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"phone": strings.TrimSpace(phone)}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update holds the optional fields of a partial member update. Nil fields
// are left untouched.
type Update struct {
	Name              *string
	Phone             *string
	ImageURL          *string
	AdharNumber       *string
	BankAccountNumber *string
}

// Apply merges the supplied fields into the member with the given ID,
// bumps updated_at, and returns the updated document. Returns ErrNotFound
// if no member has that ID.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Member, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		set["phone"] = strings.TrimSpace(*upd.Phone)
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.AdharNumber != nil {
		set["adhar_number"] = *upd.AdharNumber
	}
	if upd.BankAccountNumber != nil {
		set["bank_account_number"] = *upd.BankAccountNumber
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Member
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
