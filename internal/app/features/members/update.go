// internal/app/features/members/update.go
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/memberhub/internal/app/store/members"
	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"github.com/dalemusser/memberhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate processes PUT /api/members/{id}. Only the fields present
// in the body change; the rest of the record is untouched apart from the
// modification timestamp. An unknown or malformed id is a 404.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "members: bad member id", err, "Member not found")
		return
	}

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "members: decode update body failed", err, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Members.Apply(ctx, id, memberstore.Update{
		Name:              req.Name,
		Phone:             req.Phone,
		ImageURL:          req.ImageURL,
		AdharNumber:       req.AdharNumber,
		BankAccountNumber: req.BankAccountNumber,
	})
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			h.ErrLog.LogNotFound(w, r, "members: update target missing", nil, "Member not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "members: update failed", err)
		return
	}

	h.Log.Info("member updated", zap.String("member_id", m.ID.Hex()))

	httpjson.Write(w, http.StatusOK, m)
}
