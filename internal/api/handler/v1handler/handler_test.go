package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"realtors/internal/api/handler/v1handler"
	"testing"

	"realtors/pkg/logger"
	"realtors/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing phone")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing phone", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Validation_CarriesField(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.Invalid("phone", "The phone format is invalid."))
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	require.Equal(t, serrors.ErrValidation.Error(), res.Response.Code)
	require.Equal(t, map[string]string{"phone": "The phone format is invalid."}, res.Response.Fields)
}

func TestNewError_WrappedConflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := fmt.Errorf("could not create realtor: %w",
		serrors.Wrap(serrors.ErrConflict, errors.New("duplicate key"), "you already have a realtor profile"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "you already have a realtor profile", res.Response.Message)
	require.Empty(t, res.Response.Fields)
}

func TestNewError_Forbidden(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrForbidden))
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	require.Equal(t, "forbidden", res.Response.Message)
}

func TestWriteError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{LoginURL: "/sign-in"})

	t.Run("json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/realtors", nil)
		rec := httptest.NewRecorder()

		h.WriteError(rec, req, serrors.Invalid("phone", "The phone field is required."))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.JSONEq(t, `{
			"code": "VALIDATION",
			"message": "The phone field is required.",
			"fields": {"phone": "The phone field is required."}
		}`, rec.Body.String())
	})

	t.Run("html client is sent to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/realtors/create", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()

		h.WriteError(rec, req, serrors.With(serrors.ErrUnauthorized, "authentication required"))

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/sign-in", rec.Header().Get("Location"))
	})

	t.Run("api client gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/realtors/create", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		h.WriteError(rec, req, serrors.With(serrors.ErrUnauthorized, "authentication required"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"authentication required"}`, rec.Body.String())
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/realtors", nil)
		rec := httptest.NewRecorder()

		h.WriteError(rec, req, errors.New("pq: connection refused"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "connection refused")
	})
}
