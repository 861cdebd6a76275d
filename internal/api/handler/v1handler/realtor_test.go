package v1handler_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"realtors/internal/api/handler/v1handler"
	mockdirectory "realtors/internal/directory/mock"
	mockhighlights "realtors/internal/highlights/mock"
	"realtors/internal/policy"
	mockrealtor "realtors/internal/realtor/mock"
	"realtors/pkg/domain"
	"realtors/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routesFixture struct {
	listing    *mockdirectory.MockListing
	realtors   *mockrealtor.MockManager
	highlights *mockhighlights.MockHighlights
	router     chi.Router
}

func newRoutesFixture(t *testing.T) *routesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &routesFixture{
		listing:    mockdirectory.NewMockListing(ctrl),
		realtors:   mockrealtor.NewMockManager(ctrl),
		highlights: mockhighlights.NewMockHighlights(ctrl),
		router:     chi.NewRouter(),
	}
	h := v1handler.New(v1handler.Deps{
		Listing:    f.listing,
		Realtors:   f.realtors,
		Highlights: f.highlights,
	}, v1handler.Options{LoginURL: "/login"})
	h.Register(f.router)

	return f
}

func (f *routesFixture) do(req *http.Request, caller *domain.Identity) *httptest.ResponseRecorder {
	if caller != nil {
		req = req.WithContext(context.WithValue(req.Context(), v1handler.IdentityKey, caller))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func newCaller() *domain.Identity {
	return &domain.Identity{ID: domain.UserID(uuid.New()), Name: "Jane", Email: "jane@example.com"}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestListRealtors(t *testing.T) {
	f := newRoutesFixture(t)
	owner := domain.UserID(uuid.New())

	f.listing.EXPECT().
		List(gomock.Any(), nil, "phone", "desc", 2).
		Return(&domain.RealtorPage{
			Items: []domain.RealtorView{
				{ID: 6, Phone: "555-000-0006", UserID: owner, UserName: "Ann", UserEmail: "ann@example.com"},
			},
			Page:     2,
			PageSize: 5,
			Total:    6,
			LastPage: 2,
			SortBy:   "phone",
			Order:    "desc",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/realtors?sortBy=phone&order=desc&page=2", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.FlashCookie, Value: url.QueryEscape("Realtor deleted successfully")})
	rec := f.do(req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"realtors": [{
			"id": 6,
			"phone": "555-000-0006",
			"userId": "`+owner.String()+`",
			"userName": "Ann",
			"userEmail": "ann@example.com"
		}],
		"page": 2,
		"pageSize": 5,
		"total": 6,
		"lastPage": 2,
		"offset": 5,
		"sortBy": "phone",
		"order": "desc",
		"callerHasProfile": false,
		"message": "Realtor deleted successfully"
	}`, rec.Body.String())

	// the flash message is shown once
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, v1handler.FlashCookie, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestListRealtors_UnparsablePageFallsBack(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.listing.EXPECT().
		List(gomock.Any(), caller, "", "", 1).
		Return(&domain.RealtorPage{Page: 1, PageSize: 5, LastPage: 1, SortBy: "name", Order: "asc", CallerHasProfile: true}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors?page=abc", nil), caller)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, true, body["callerHasProfile"])
	require.Empty(t, body["realtors"])
	require.NotContains(t, body, "message")
}

func TestListRealtors_HugePageKeepsOffsetInRange(t *testing.T) {
	f := newRoutesFixture(t)

	f.listing.EXPECT().
		List(gomock.Any(), nil, "", "", math.MaxInt).
		Return(&domain.RealtorPage{Page: math.MaxInt, PageSize: 5, Total: 6, LastPage: 2, SortBy: "name", Order: "asc"}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors?page="+strconv.Itoa(math.MaxInt), nil), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Empty(t, body["realtors"])
	offset, ok := body["offset"].(float64)
	require.True(t, ok)
	require.GreaterOrEqual(t, offset, float64(0))
}

func TestListRealtors_CacheFailureSurfaces(t *testing.T) {
	f := newRoutesFixture(t)

	f.listing.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "cache unavailable"))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors", nil), nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestShowRealtor(t *testing.T) {
	f := newRoutesFixture(t)

	t.Run("found", func(t *testing.T) {
		f.listing.EXPECT().Show(gomock.Any(), domain.RealtorID(3)).
			Return(&domain.RealtorView{ID: 3, Phone: "(555) 123-4567", UserName: "Bo"}, nil)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/3", nil), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, "(555) 123-4567", body["phone"])
		require.Equal(t, "Bo", body["userName"])
	})

	t.Run("missing", func(t *testing.T) {
		f.listing.EXPECT().Show(gomock.Any(), domain.RealtorID(4)).
			Return(nil, serrors.With(serrors.ErrNotFound, "realtor not found"))

		rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/4", nil), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/abc", nil), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateRealtorForm(t *testing.T) {
	f := newRoutesFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/create", nil), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/realtors/create", nil), newCaller())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"minLength":10`)
	require.Contains(t, rec.Body.String(), `"action":"/realtors"`)
}

func TestCreateRealtor_JSONIgnoresUnknownKeys(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().
		Create(gomock.Any(), caller, domain.RealtorInput{Phone: "555-123-4567"}).
		Return(domain.RealtorID(7), nil)

	body := `{"id": 99, "user_id": "` + uuid.NewString() + `", "phone": "555-123-4567", "extra": {"a": [1, 2]}}`
	req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req, caller)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":7,"message":"Realtor created successfully."}`, rec.Body.String())
}

func TestCreateRealtor_NumericPhone(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().
		Create(gomock.Any(), caller, domain.RealtorInput{Phone: "5551234567"}).
		Return(domain.RealtorID(1), nil)

	req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(`{"phone":5551234567}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := f.do(req, caller)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRealtor_MalformedJSON(t *testing.T) {
	f := newRoutesFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(`{"phone":`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req, newCaller())

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRealtor_NonScalarPhone(t *testing.T) {
	f := newRoutesFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(`{"phone":["555"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req, newCaller())

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "The phone format is invalid.", decodeBody(t, rec)["message"])
}

func TestCreateRealtor_HTMLForm(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().
		Create(gomock.Any(), caller, domain.RealtorInput{Phone: "+1 (555) 123-4567"}).
		Return(domain.RealtorID(2), nil)

	form := url.Values{"phone": {"+1 (555) 123-4567"}, "user_id": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	rec := f.do(req, caller)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/realtors", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	msg, err := url.QueryUnescape(cookies[0].Value)
	require.NoError(t, err)
	require.Equal(t, "Realtor created successfully.", msg)
}

func TestCreateRealtor_Errors(t *testing.T) {
	tests := []struct {
		name       string
		accept     string
		err        error
		wantStatus int
		wantLoc    string
	}{
		{
			name:       "anonymous browser",
			accept:     "text/html",
			err:        serrors.With(serrors.ErrUnauthorized, "authentication required"),
			wantStatus: http.StatusFound,
			wantLoc:    "/login",
		},
		{
			name:       "anonymous api",
			err:        serrors.With(serrors.ErrUnauthorized, "authentication required"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "validation",
			err:        serrors.Invalid("phone", "The phone must be at least 10 characters."),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "second profile",
			err:        serrors.With(serrors.ErrConflict, "you already have a realtor profile"),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoutesFixture(t)
			f.realtors.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.RealtorID(0), tt.err)

			req := httptest.NewRequest(http.MethodPost, "/realtors", strings.NewReader(`{"phone":"555"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := f.do(req, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLoc != "" {
				require.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestEditRealtorForm(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	f.realtors.EXPECT().
		Authorize(gomock.Any(), caller, domain.RealtorID(5), policy.UpdateRealtor).
		Return(&domain.Realtor{ID: 5, Phone: "555-123-4567", UserID: caller.ID, CreatedAt: now, UpdatedAt: now}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/5/edit", nil), caller)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	form, ok := body["form"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "/realtors/5", form["action"])
	require.Equal(t, http.MethodPut, form["method"])
	require.Contains(t, rec.Body.String(), `"value":"555-123-4567"`)
}

func TestEditRealtorForm_Forbidden(t *testing.T) {
	f := newRoutesFixture(t)

	f.realtors.EXPECT().
		Authorize(gomock.Any(), gomock.Any(), domain.RealtorID(5), policy.UpdateRealtor).
		Return(nil, serrors.With(serrors.ErrForbidden, "not allowed to update-realtor"))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/realtors/5/edit", nil), newCaller())
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateRealtor(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().
		Update(gomock.Any(), caller, domain.RealtorID(5), domain.RealtorInput{Phone: "555 987 6543"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/realtors/5", strings.NewReader(`{"phone":"555 987 6543","user_id":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req, caller)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Realtor updated successfully"}`, rec.Body.String())
}

func TestUpdateRealtor_NotFoundBeforeBodyMatters(t *testing.T) {
	f := newRoutesFixture(t)

	f.realtors.EXPECT().
		Update(gomock.Any(), gomock.Any(), domain.RealtorID(404), gomock.Any()).
		Return(serrors.With(serrors.ErrNotFound, "realtor not found"))

	req := httptest.NewRequest(http.MethodPatch, "/realtors/404", strings.NewReader(`{"phone":""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(req, newCaller())

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRealtor(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().Delete(gomock.Any(), caller, domain.RealtorID(8)).Return(nil)

	rec := f.do(httptest.NewRequest(http.MethodDelete, "/realtors/8", nil), caller)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Realtor deleted successfully"}`, rec.Body.String())
}

func TestFormMethodOverride(t *testing.T) {
	f := newRoutesFixture(t)
	caller := newCaller()

	f.realtors.EXPECT().Delete(gomock.Any(), caller, domain.RealtorID(8)).Return(nil)
	f.realtors.EXPECT().
		Update(gomock.Any(), caller, domain.RealtorID(8), domain.RealtorInput{Phone: "555-123-4567"}).
		Return(nil)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/realtors/8", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "text/html")

		return f.do(req, caller)
	}

	rec := post(url.Values{"_method": {"DELETE"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = post(url.Values{"_method": {"put"}, "phone": {"555-123-4567"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = post(url.Values{"_method": {"GET"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHighlights(t *testing.T) {
	f := newRoutesFixture(t)
	generated := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	f.highlights.EXPECT().Get(gomock.Any()).Return(&domain.Highlights{
		Realtors:    []domain.RealtorView{{ID: 9, Phone: "555-123-4567", UserName: "Cy"}},
		GeneratedAt: generated,
	}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/highlights", nil), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "2024-05-06T07:08:09Z", body["generatedAt"])
	require.Len(t, body["realtors"], 1)
}
