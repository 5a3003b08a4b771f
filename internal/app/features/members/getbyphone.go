// internal/app/features/members/getbyphone.go
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/memberhub/internal/app/store/members"
	"github.com/dalemusser/memberhub/internal/app/system/httpjson"
	"github.com/dalemusser/memberhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleGetByPhone processes GET /api/members/{phone}. Member phones are
// not unique; the store returns its first natural-order match.
func (h *Handler) HandleGetByPhone(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Members.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			h.ErrLog.LogNotFound(w, r, "members: no member for phone", nil, "Member not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "members: phone lookup failed", err)
		return
	}

	httpjson.Write(w, http.StatusOK, m)
}
