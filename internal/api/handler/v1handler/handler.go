// Package v1handler implements the HTTP endpoints of the realtor directory:
// the listing, the profile lifecycle routes and the highlights view.
package v1handler

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"realtors/internal/config"
	"realtors/internal/directory"
	"realtors/internal/highlights"
	"realtors/internal/realtor"
	"realtors/pkg/logger"
	"realtors/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

type Deps struct {
	Listing    directory.Listing
	Realtors   realtor.Manager
	Highlights highlights.Highlights
}

type Options struct {
	// LoginURL is where browser clients are sent when authentication is required.
	LoginURL string
}

func NewOptions(cfg *config.Config) Options {
	return Options{LoginURL: cfg.Auth.LoginURL}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.LoginURL == "" {
		options.LoginURL = "/login"
	}

	return &Handler{deps: deps, options: options}
}

// Register mounts the v1 routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/highlights", h.GetHighlights)

	r.Route("/realtors", func(r chi.Router) {
		r.Get("/", h.ListRealtors)
		r.Post("/", h.CreateRealtor)
		r.Get("/create", h.CreateRealtorForm)
		r.Get("/{id}", h.ShowRealtor)
		r.Get("/{id}/edit", h.EditRealtorForm)
		r.Put("/{id}", h.UpdateRealtor)
		r.Patch("/{id}", h.UpdateRealtor)
		r.Delete("/{id}", h.DeleteRealtor)
		// html forms can only POST; _method selects the verb
		r.Post("/{id}", h.overrideMethod)
	})
}

// ErrorResponse is the body written for failed requests.
type ErrorResponse struct {
	Code    string
	Message string
	// Fields maps offending input fields to their messages for validation errors.
	Fields map[string]string
}

type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrValidation:   {http.StatusUnprocessableEntity, "the given data was invalid"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps err onto a status code and a client safe response.
// Errors without a known kind are reported as internal and their text is
// only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request rejected", zap.Error(err))

	res := ErrorResponse{
		Code:    kind.Error(),
		Message: mapping.message,
	}

	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		res.Message = sErr.Message()
	}
	if kind == serrors.ErrValidation && sErr != nil && sErr.Field() != "" {
		res.Fields = map[string]string{sErr.Field(): res.Message}
	}

	return &ErrorStatusCode{StatusCode: mapping.status, Response: res}
}

// WriteError writes err to w. Browser clients that need to sign in are
// redirected to the login page instead.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, serrors.ErrUnauthorized) && wantsHTML(r) {
		http.Redirect(w, r, h.options.LoginURL, http.StatusFound)

		return
	}

	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
			if len(res.Response.Fields) > 0 {
				e.Field("fields", func(e *jx.Encoder) { encodeFields(e, res.Response.Fields) })
			}
		})
	})
}

func encodeFields(e *jx.Encoder, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	e.Obj(func(e *jx.Encoder) {
		for _, name := range names {
			e.Field(name, func(e *jx.Encoder) { e.Str(fields[name]) })
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// wantsHTML reports whether the client navigates with a browser rather than
// calling the API programmatically.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")

	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}
