// internal/app/features/login/handler.go
package login

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
	"github.com/dalemusser/memberhub/internal/app/system/token"
	"github.com/dalemusser/memberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	Tokens *token.Issuer
	ErrLog *apierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *token.Issuer, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		ErrLog: errLog,
		Log:    logger,
	}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleLogin processes POST /login.
//
// Unknown phone and wrong password get the same response, so a caller
// cannot probe which phones are registered.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: decode body failed", err, "Phone and password required")
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" || req.Password == "" {
		h.ErrLog.LogBadRequest(w, r, "login: missing required field", nil, "Phone and password required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogUnauthorized(w, r, "login: unknown phone", nil, "Invalid credentials")
			return
		}
		h.ErrLog.LogServerError(w, r, "login: phone lookup failed", err)
		return
	}

	if !passwords.Verify(req.Password, u.Password) {
		h.ErrLog.LogUnauthorized(w, r, "login: password mismatch", nil, "Invalid credentials")
		return
	}

	tok, err := h.Tokens.Issue(u.ID.Hex())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "login: token issue failed", err)
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", u.ID.Hex()))

	httpjson.Write(w, http.StatusOK, loginResponse{Token: tok, User: u})
}
