// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/memberhub/internal/app/features/errors"
	userstore "github.com/dalemusser/memberhub/internal/app/store/users"
	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"github.com/dalemusser/memberhub/internal/app/system/passwords"
	"github.com/dalemusser/memberhub/internal/app/system/timeouts"
	"github.com/dalemusser/memberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	ErrLog *apierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// HandleRegister processes POST /register.
//
// The phone existence check gives a friendly conflict response, but the
// unique index on users.phone is what closes the race between two
// simultaneous registrations: the loser's insert maps to the same conflict.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "register: decode body failed", err, "All fields are required")
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" || req.Password == "" {
		h.ErrLog.LogBadRequest(w, r, "register: missing required field", nil, "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Users.GetByPhone(ctx, phone); err == nil {
		h.ErrLog.LogBadRequest(w, r, "register: phone already registered", nil, "User already exists")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.LogServerError(w, r, "register: phone lookup failed", err)
		return
	}

	hash, err := passwords.Hash(req.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "register: password hash failed", err)
		return
	}

	u, err := h.Users.Create(ctx, models.User{
		Name:     name,
		Phone:    phone,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicatePhone) {
			h.ErrLog.LogBadRequest(w, r, "register: lost create race on phone", err, "User already exists")
			return
		}
		h.ErrLog.LogServerError(w, r, "register: user insert failed", err)
		return
	}

	h.Log.Info("new user registered",
		zap.String("user_id", u.ID.Hex()),
		zap.String("phone", u.Phone))

	httpjson.WriteMessage(w, http.StatusCreated, "User registered successfully")
}
