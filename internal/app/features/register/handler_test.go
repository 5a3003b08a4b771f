package register_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	apierrors "github.com/dalemusser/memberhub/internal/app/features/errors"
	"github.com/dalemusser/memberhub/internal/app/features/register"
	"github.com/dalemusser/memberhub/internal/app/system/indexes"
	"github.com/dalemusser/memberhub/internal/app/system/passwords"
	"github.com/dalemusser/memberhub/internal/domain/models"
	"github.com/dalemusser/memberhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *register.Handler {
	logger := zap.NewNop()
	return register.NewHandler(db, apierrors.NewErrorLogger(logger), logger)
}

func TestRegister_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{
		"name": "Asha", "phone": "0711111111", "password": "s3cret",
	})
	rec := testutil.NewRecorder()

	h.HandleRegister(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "User registered successfully")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	var u models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"phone": "0711111111"}).Decode(&u); err != nil {
		t.Fatalf("expected user to be persisted: %v", err)
	}
	if u.Name != "Asha" {
		t.Errorf("name: got %q", u.Name)
	}
	if u.Password == "s3cret" || !strings.HasPrefix(u.Password, "$2") {
		t.Errorf("expected a bcrypt hash to be stored, got %q", u.Password)
	}
	if !passwords.Verify("s3cret", u.Password) {
		t.Error("stored hash does not verify against the submitted password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(db)

	cases := []map[string]string{
		{"phone": "0711111111", "password": "x"},
		{"name": "Asha", "password": "x"},
		{"name": "Asha", "phone": "0711111111"},
		{},
	}

	for _, body := range cases {
		req := testutil.NewJSONRequest(t, "POST", "/register", body)
		rec := testutil.NewRecorder()

		h.HandleRegister(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "All fields are required")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no users to be created, found %d", n)
	}
}

func TestRegister_DuplicatePhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateUser(ctx, "First", "0722222222", "pw")

	h := newHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{
		"name": "Second", "phone": "0722222222", "password": "other",
	})
	rec := testutil.NewRecorder()

	h.HandleRegister(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "User already exists")

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"phone": "0722222222"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one user with the phone, found %d", n)
	}
}

func TestRegister_ConcurrentSamePhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique index turns a lost existence-check race into a conflict
	// on insert; losers get the same response as a plain duplicate.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	h := newHandler(db)

	const attempts = 8
	recs := make([]*testutil.ResponseRecorder, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{
			"name": "Racer", "phone": "0744444444", "password": "pw",
		})
		recs[i] = testutil.NewRecorder()

		rec := recs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HandleRegister(rec, req)
		}()
	}
	wg.Wait()

	created := 0
	for _, rec := range recs {
		switch rec.Code {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			rec.AssertContains(t, "User already exists")
		default:
			t.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
		}
	}
	if created != 1 {
		t.Errorf("expected exactly one successful registration, got %d", created)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"phone": "0744444444"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one stored user, found %d", n)
	}
}
