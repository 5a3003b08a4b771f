package login_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	apierrors "github.com/dalemusser/memberhub/internal/app/features/errors"
	"github.com/dalemusser/memberhub/internal/app/features/login"
	"github.com/dalemusser/memberhub/internal/app/system/token"
	"github.com/dalemusser/memberhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database, issuer *token.Issuer) *login.Handler {
	logger := zap.NewNop()
	return login.NewHandler(db, issuer, apierrors.NewErrorLogger(logger), logger)
}

func TestLogin_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	user := fx.CreateUser(ctx, "Asha", "0711111111", "s3cret")

	issuer := token.NewIssuer("test-secret", time.Hour)
	h := newHandler(db, issuer)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"phone": "0711111111", "password": "s3cret",
	})
	rec := testutil.NewRecorder()

	h.HandleLogin(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"user"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}
	claims, err := issuer.Parse(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.ID != user.ID.Hex() {
		t.Errorf("token id claim: got %q, want %q", claims.ID, user.ID.Hex())
	}

	if resp.User.ID != user.ID.Hex() || resp.User.Phone != "0711111111" {
		t.Errorf("user in response: got %+v", resp.User)
	}

	// The stored hash must never appear in the response body.
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "$2") {
		t.Errorf("response leaks password material: %s", rec.Body.String())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateUser(ctx, "Asha", "0711111111", "s3cret")

	h := newHandler(db, token.NewIssuer("test-secret", time.Hour))

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"phone": "0711111111", "password": "wrong",
	})
	rec := testutil.NewRecorder()

	h.HandleLogin(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "Invalid credentials")
	if strings.Contains(rec.Body.String(), "token") {
		t.Error("failed login must not include a token")
	}
}

func TestLogin_UnknownPhone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(db, token.NewIssuer("test-secret", time.Hour))

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"phone": "0799999999", "password": "whatever",
	})
	rec := testutil.NewRecorder()

	h.HandleLogin(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHandler(db, token.NewIssuer("test-secret", time.Hour))

	for _, body := range []map[string]string{
		{"password": "x"},
		{"phone": "0711111111"},
		{},
	} {
		req := testutil.NewJSONRequest(t, "POST", "/login", body)
		rec := testutil.NewRecorder()

		h.HandleLogin(rec, req)

		rec.AssertStatus(t, http.StatusBadRequest)
		rec.AssertContains(t, "Phone and password required")
	}
}
