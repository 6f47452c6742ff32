package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainings-module/config"
	"trainings-module/storage"
	"trainings-module/store"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) *http.ServeMux {
	t.Helper()

	config.AppConfig = config.Config{
		AdminUser: "admin",
		AdminPass: "secret12",
	}

	slot, err := storage.NewFileSlot(t.TempDir())
	require.NoError(t, err)

	trainings := store.New(slot)
	enrollments := store.NewEnrollmentStore(slot)
	return SetupRoutes(slot, trainings, enrollments)
}

func do(mux *http.ServeMux, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func login(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	rec := do(mux, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "secret12",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	mux := newTestServer(t)

	for _, target := range []string{
		"/admin/trainings",
		"/admin/trainings/export",
	} {
		rec := do(mux, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}

	rec := do(mux, http.MethodPost, "/admin/trainings/approve?id=3", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFailsWhenNotConfigured(t *testing.T) {
	mux := newTestServer(t)
	config.AppConfig.AdminPass = ""

	rec := do(mux, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin",
		"password": "",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogoutRevokesAdminAccess(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodGet, "/admin/trainings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(mux, http.MethodPost, "/admin/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(mux, http.MethodGet, "/admin/trainings", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminListSeedCollection(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodGet, "/admin/trainings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Trainings  []map[string]interface{} `json:"trainings"`
		TotalCount int                      `json:"total_count"`
		PageIndex  int                      `json:"page_index"`
		PageCount  int                      `json:"page_count"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 6, data.TotalCount)
	assert.Equal(t, 1, data.PageIndex)
	assert.Equal(t, 1, data.PageCount)
	assert.Len(t, data.Trainings, 6)
}

func TestAdminListPageOutOfRange(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodGet, "/admin/trainings?page=2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(mux, http.MethodGet, "/admin/trainings?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCreateValidation(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodPost, "/admin/trainings", map[string]interface{}{
		"title":       "",
		"description": "Something",
		"provider":    "Someone",
		"category":    "tech",
		"type":        "online",
		"price":       1000,
		"duration":    "whenever",
		"image":       "not a url",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failures map[string]string
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &failures))
	assert.Contains(t, failures, "title")
	assert.Contains(t, failures, "duration")
	assert.Contains(t, failures, "image")
	assert.NotContains(t, failures, "description")
}

func TestAdminCrudLifecycle(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	input := map[string]interface{}{
		"title":       "Mobile App Development",
		"description": "Build Android and iOS apps with Flutter.",
		"provider":    "AppWorks Lagos",
		"category":    "tech",
		"type":        "online",
		"price":       120000,
		"duration":    "4 months",
		"image":       "https://example.com/flutter.jpg",
	}

	rec := do(mux, http.MethodPost, "/admin/trainings", input)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID     int    `json:"id"`
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)
	assert.Equal(t, "pending", created.Status)

	// visible through the public detail endpoint
	rec = do(mux, http.MethodGet, fmt.Sprintf("/training?id=%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// update
	input["id"] = created.ID
	input["title"] = "Mobile App Development (Advanced)"
	rec = do(mux, http.MethodPut, "/admin/trainings", input)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Title     string  `json:"title"`
		UpdatedAt *string `json:"updatedAt"`
	}
	env = decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Mobile App Development (Advanced)", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)

	// delete
	rec = do(mux, http.MethodDelete, fmt.Sprintf("/admin/trainings?id=%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(mux, http.MethodGet, fmt.Sprintf("/training?id=%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodDelete, fmt.Sprintf("/admin/trainings?id=%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUpdateMissingID(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodPut, "/admin/trainings", map[string]interface{}{
		"id":          424242,
		"title":       "T",
		"description": "D",
		"provider":    "P",
		"category":    "tech",
		"type":        "online",
		"price":       1000,
		"duration":    "1 month",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprove(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodPost, "/admin/trainings/approve?id=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var approved struct {
		Status    string  `json:"status"`
		UpdatedAt *string `json:"updatedAt"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &approved))
	assert.Equal(t, "active", approved.Status)
	assert.NotNil(t, approved.UpdatedAt)

	rec = do(mux, http.MethodPost, "/admin/trainings/approve?id=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportStreamsWorkbook(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodGet, "/admin/trainings/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())
}

func TestBrochureStreamsPDF(t *testing.T) {
	mux := newTestServer(t)
	login(t, mux)

	rec := do(mux, http.MethodGet, "/admin/trainings/brochure?id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = do(mux, http.MethodGet, "/admin/trainings/brochure?id=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicListing(t *testing.T) {
	mux := newTestServer(t)

	tests := []struct {
		target string
		total  int
	}{
		{"/trainings", 6},
		{"/trainings?category=creative", 3},
		{"/trainings?category=tech&category=business", 3},
		{"/trainings?price=free", 0},
		{"/trainings?price=100000%2B", 2},
		{"/trainings?duration=1-3months", 2},
		{"/trainings?type=physical", 3},
		{"/trainings?state=Oyo", 1},
		{"/trainings?search=bootcamp", 1},
		{"/trainings?search=nosuchthing", 0},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			rec := do(mux, http.MethodGet, tc.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var data struct {
				TotalCount int `json:"total_count"`
			}
			env := decode(t, rec)
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tc.total, data.TotalCount)
		})
	}
}

func TestPublicListingRejectsNearestSort(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodGet, "/trainings?sort=nearest", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicListingPageOutOfRange(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodGet, "/trainings?page=2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicGet(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodGet, "/training?id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Title string `json:"title"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Full Stack Web Development Bootcamp", data.Title)

	rec = do(mux, http.MethodGet, "/training?id=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(mux, http.MethodGet, "/training", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollValidation(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodPost, "/enroll", map[string]interface{}{
		"training_id": 1,
		"name":        "Ada Obi",
		"email":       "ada@example.com",
		"phone":       "12345",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failures map[string]string
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &failures))
	assert.Contains(t, failures, "phone")
}

func TestEnrollUnknownTraining(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodPost, "/enroll", map[string]interface{}{
		"training_id": 999,
		"name":        "Ada Obi",
		"email":       "ada@example.com",
		"phone":       "08031234567",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyPayment(t *testing.T) {
	mux := newTestServer(t)
	config.AppConfig.RazorpayKeySecret = "testsecret"

	rec := do(mux, http.MethodPost, "/enroll/verify", map[string]string{
		"order_id": "order_x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing fields are rejected")

	rec = do(mux, http.MethodPost, "/enroll/verify", map[string]string{
		"order_id":   "order_x",
		"payment_id": "pay_y",
		"signature":  "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "bad signature is rejected")

	mac := hmac.New(sha256.New, []byte("testsecret"))
	mac.Write([]byte("order_x|pay_y"))
	signature := hex.EncodeToString(mac.Sum(nil))

	rec = do(mux, http.MethodPost, "/enroll/verify", map[string]string{
		"order_id":   "order_x",
		"payment_id": "pay_y",
		"signature":  signature,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, "valid signature for an unknown order")
}

func TestContactValidation(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodPost, "/contact", map[string]string{
		"name":    "Ada Obi",
		"email":   "not-an-email",
		"message": "Hello",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failures map[string]string
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &failures))
	assert.Contains(t, failures, "email")
}

func TestCORSPreflight(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodOptions, "/trainings", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestServer(t)

	rec := do(mux, http.MethodPost, "/trainings", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(mux, http.MethodGet, "/admin/login", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
