// internal/app/features/members/create.go
package members

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"github.com/dalemusser/memberhub/internal/app/system/timeouts"
	"github.com/dalemusser/memberhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate processes POST /api/users.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "members: decode create body failed", err, "All fields are required")
		return
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if req.User == "" || name == "" || phone == "" || req.ImageURL == "" {
		h.ErrLog.LogBadRequest(w, r, "members: missing required field", nil, "All fields are required")
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.User))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "members: bad owner id", err, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Members.Create(ctx, models.Member{
		UserID:            ownerID,
		Name:              name,
		Phone:             phone,
		ImageURL:          req.ImageURL,
		AdharNumber:       req.AdharNumber,
		BankAccountNumber: req.BankAccountNumber,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "members: insert failed", err)
		return
	}

	h.Log.Info("member added",
		zap.String("member_id", m.ID.Hex()),
		zap.String("user_id", ownerID.Hex()))

	httpjson.Write(w, http.StatusCreated, m)
}
