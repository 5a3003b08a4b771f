// internal/app/features/members/list.go
package members

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"github.com/dalemusser/memberhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList processes GET /api/users?user=<id>, returning the owner's
// members newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userParam := strings.TrimSpace(r.URL.Query().Get("user"))
	if userParam == "" {
		h.ErrLog.LogBadRequest(w, r, "members: missing user query param", nil, "User ID is required")
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(userParam)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "members: bad owner id", err, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Members.ListByOwner(ctx, ownerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "members: list query failed", err)
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
