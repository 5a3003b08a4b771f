package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/memberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name, phone, and plaintext
// password (stored hashed, as the service would).
func (f *Fixtures) CreateUser(ctx context.Context, name, phone, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Phone:     phone,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateMember creates a test member owned by the given user.
func (f *Fixtures) CreateMember(ctx context.Context, ownerID primitive.ObjectID, name, phone string) models.Member {
	f.t.Helper()

	// Mongo stores times at millisecond precision; truncating here keeps
	// round-trip equality checks in tests honest. Backdating by a second
	// lets update tests assert that UpdatedAt advanced.
	now := time.Now().UTC().Add(-time.Second).Truncate(time.Millisecond)
	member := models.Member{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID,
		Name:      name,
		Phone:     phone,
		ImageURL:  "http://img.test/" + phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("members").InsertOne(ctx, member)
	if err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}

	return member
}

// CreateMemberAt creates a test member with an explicit creation timestamp,
// for tests that depend on list ordering.
func (f *Fixtures) CreateMemberAt(ctx context.Context, ownerID primitive.ObjectID, name, phone string, createdAt time.Time) models.Member {
	f.t.Helper()

	member := models.Member{
		ID:        primitive.NewObjectID(),
		UserID:    ownerID,
		Name:      name,
		Phone:     phone,
		ImageURL:  "http://img.test/" + phone,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	_, err := f.db.Collection("members").InsertOne(ctx, member)
	if err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}

	return member
}
