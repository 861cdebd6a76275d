package v1handler

import (
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

// GetHighlights serves the newest profiles as kept in the highlights cache.
func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Highlights.Get(r.Context())
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("realtors", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, v := range res.Realtors {
						encodeRealtorView(e, v)
					}
				})
			})
			e.Field("generatedAt", func(e *jx.Encoder) { e.Str(res.GeneratedAt.UTC().Format(time.RFC3339)) })
		})
	})
}
