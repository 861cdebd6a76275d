package v1handler

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"realtors/internal/directory"
	"realtors/internal/policy"
	"realtors/internal/realtor"
	"realtors/pkg/domain"
	"realtors/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	// FlashCookie carries a one-shot status message to the next listing read.
	FlashCookie = "flash"

	maxBodyBytes = 1 << 20

	msgCreated = "Realtor created successfully."
	msgUpdated = "Realtor updated successfully"
	msgDeleted = "Realtor deleted successfully"
)

// ListRealtors serves one page of the directory.
// Query: sortBy, order and page; unsupported values fall back to defaults.
func (h *Handler) ListRealtors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}

	res, err := h.deps.Listing.List(r.Context(), IdentityFromContext(r.Context()), q.Get("sortBy"), q.Get("order"), page)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	flash := consumeFlash(w, r)
	offset := directory.Offset(res.Page)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("realtors", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, v := range res.Items {
						encodeRealtorView(e, v)
					}
				})
			})
			e.Field("page", func(e *jx.Encoder) { e.Int(res.Page) })
			e.Field("pageSize", func(e *jx.Encoder) { e.Int(res.PageSize) })
			e.Field("total", func(e *jx.Encoder) { e.Int64(res.Total) })
			e.Field("lastPage", func(e *jx.Encoder) { e.Int(res.LastPage) })
			e.Field("offset", func(e *jx.Encoder) { e.Int(offset) })
			e.Field("sortBy", func(e *jx.Encoder) { e.Str(res.SortBy) })
			e.Field("order", func(e *jx.Encoder) { e.Str(res.Order) })
			e.Field("callerHasProfile", func(e *jx.Encoder) { e.Bool(res.CallerHasProfile) })
			if flash != "" {
				e.Field("message", func(e *jx.Encoder) { e.Str(flash) })
			}
		})
	})
}

// ShowRealtor serves a single profile joined with its owner.
func (h *Handler) ShowRealtor(w http.ResponseWriter, r *http.Request) {
	id, err := realtorID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	view, err := h.deps.Listing.Show(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRealtorView(e, *view) })
}

// CreateRealtorForm describes the creation form. Only signed in callers may see it.
func (h *Handler) CreateRealtorForm(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil || caller.IsZero() {
		h.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "authentication required"))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("form", func(e *jx.Encoder) { encodeForm(e, "/realtors", http.MethodPost, "") })
		})
	})
}

// EditRealtorForm describes the edit form prefilled with the stored phone.
func (h *Handler) EditRealtorForm(w http.ResponseWriter, r *http.Request) {
	id, err := realtorID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	profile, err := h.deps.Realtors.Authorize(r.Context(), IdentityFromContext(r.Context()), id, policy.UpdateRealtor)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("realtor", func(e *jx.Encoder) { encodeRealtor(e, *profile) })
			e.Field("form", func(e *jx.Encoder) {
				encodeForm(e, realtorPath(profile.ID), http.MethodPut, profile.Phone)
			})
		})
	})
}

func (h *Handler) CreateRealtor(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	id, err := h.deps.Realtors.Create(r.Context(), IdentityFromContext(r.Context()), input)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if wantsHTML(r) {
		redirectWithFlash(w, r, msgCreated)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("id", func(e *jx.Encoder) { e.Int64(int64(id)) })
			e.Field("message", func(e *jx.Encoder) { e.Str(msgCreated) })
		})
	})
}

func (h *Handler) UpdateRealtor(w http.ResponseWriter, r *http.Request) {
	id, err := realtorID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	input, err := decodeInput(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err = h.deps.Realtors.Update(r.Context(), IdentityFromContext(r.Context()), id, input); err != nil {
		h.WriteError(w, r, err)

		return
	}

	h.done(w, r, msgUpdated)
}

func (h *Handler) DeleteRealtor(w http.ResponseWriter, r *http.Request) {
	id, err := realtorID(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err = h.deps.Realtors.Delete(r.Context(), IdentityFromContext(r.Context()), id); err != nil {
		h.WriteError(w, r, err)

		return
	}

	h.done(w, r, msgDeleted)
}

func (h *Handler) overrideMethod(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.WriteError(w, r, err)

		return
	}

	switch strings.ToUpper(r.PostForm.Get("_method")) {
	case http.MethodPut, http.MethodPatch:
		h.UpdateRealtor(w, r)
	case http.MethodDelete:
		h.DeleteRealtor(w, r)
	default:
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "unsupported form method"))
	}
}

func (h *Handler) done(w http.ResponseWriter, r *http.Request, message string) {
	if wantsHTML(r) {
		redirectWithFlash(w, r, message)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("message", func(e *jx.Encoder) { e.Str(message) })
		})
	})
}

func realtorID(r *http.Request) (domain.RealtorID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, serrors.With(serrors.ErrNotFound, "realtor not found")
	}

	return domain.RealtorID(id), nil
}

func realtorPath(id domain.RealtorID) string {
	return "/realtors/" + strconv.FormatInt(int64(id), 10)
}

// decodeInput reads the caller writable fields from a JSON or form body.
// Every other submitted key is ignored.
func decodeInput(r *http.Request) (domain.RealtorInput, error) {
	var input domain.RealtorInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := parseForm(r); err != nil {
			return input, err
		}
		input.Phone = r.PostForm.Get("phone")

		return input, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return input, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "read body"), "could not read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return input, nil
	}

	d := jx.DecodeBytes(body)
	err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "phone" {
			return d.Skip()
		}

		switch d.Next() {
		case jx.String:
			v, err := d.Str()
			input.Phone = v

			return err //nolint: wrapcheck
		case jx.Number:
			v, err := d.Num()
			input.Phone = v.String()

			return err //nolint: wrapcheck
		case jx.Null:
			return d.Null() //nolint: wrapcheck
		default:
			if err := d.Skip(); err != nil {
				return err //nolint: wrapcheck
			}

			return serrors.Invalid("phone", "The phone format is invalid.")
		}
	})
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrValidation {
			return input, err
		}

		return input, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode body"), "malformed request body")
	}

	return input, nil
}

func parseForm(r *http.Request) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "parse form"), "malformed form body")
	}

	return nil
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/realtors", http.StatusSeeOther)
}

// consumeFlash returns the pending flash message, if any, and clears it.
func consumeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(FlashCookie)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	message, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return message
}

func encodeRealtorView(e *jx.Encoder, v domain.RealtorView) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(int64(v.ID)) })
		e.Field("phone", func(e *jx.Encoder) { e.Str(v.Phone) })
		e.Field("userId", func(e *jx.Encoder) { e.Str(v.UserID.String()) })
		e.Field("userName", func(e *jx.Encoder) { e.Str(v.UserName) })
		e.Field("userEmail", func(e *jx.Encoder) { e.Str(v.UserEmail) })
	})
}

func encodeRealtor(e *jx.Encoder, v domain.Realtor) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(int64(v.ID)) })
		e.Field("phone", func(e *jx.Encoder) { e.Str(v.Phone) })
		e.Field("userId", func(e *jx.Encoder) { e.Str(v.UserID.String()) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(v.CreatedAt.UTC().Format(time.RFC3339)) })
		e.Field("updatedAt", func(e *jx.Encoder) { e.Str(v.UpdatedAt.UTC().Format(time.RFC3339)) })
	})
}

func encodeForm(e *jx.Encoder, action, method, phone string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("action", func(e *jx.Encoder) { e.Str(action) })
		e.Field("method", func(e *jx.Encoder) { e.Str(method) })
		e.Field("fields", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("name", func(e *jx.Encoder) { e.Str("phone") })
					e.Field("required", func(e *jx.Encoder) { e.Bool(true) })
					e.Field("pattern", func(e *jx.Encoder) { e.Str(realtor.PhonePattern) })
					e.Field("minLength", func(e *jx.Encoder) { e.Int(realtor.MinPhoneLength) })
					e.Field("value", func(e *jx.Encoder) { e.Str(phone) })
				})
			})
		})
	})
}
