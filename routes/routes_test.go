package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderdesk-backend/operations"
	"orderdesk-backend/repository"
	"orderdesk-backend/services"
	"orderdesk-backend/testutil"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "correct-horse"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.PasswordCost = bcrypt.MinCost
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	tokens utils.TokenConfig
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	catalog := repository.NewServiceStore(db, nil)
	orders := repository.NewOrderRepository(db, nil)
	accounts := services.NewAdminAccounts(repository.NewAdminStore(db))
	require.NoError(t, accounts.Bootstrap(context.Background(), adminEmail, adminPassword))

	tokens := utils.TokenConfig{Secret: []byte("test-secret"), Expiry: time.Hour}
	ops := operations.New(catalog,
		services.NewCatalogAdmin(catalog),
		services.NewOrderLifecycle(orders, catalog),
		services.NewLookup(orders))
	return &testServer{
		t: t,
		router: SetupRouter(Deps{
			Ops:         ops,
			Accounts:    accounts,
			Tokens:      tokens,
			CORSOrigins: []string{"http://localhost:3000"},
		}),
		tokens: tokens,
	}
}

func (s *testServer) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) jsonRequest(method, path string, body any, token string) *http.Request {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func (s *testServer) login() string {
	s.t.Helper()
	w, env := s.do(s.jsonRequest(http.MethodPost, "/auth/login",
		gin.H{"email": adminEmail, "password": adminPassword}, ""))
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(s.t, data.Token)
	return data.Token
}

func validOrder() gin.H {
	return gin.H{
		"service":        "logo",
		"projectDetails": "A logo for my coffee shop, warm colors",
		"customerName":   "Customer",
		"customerEmail":  "customer@x.com",
	}
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitAndTrackOrder(t *testing.T) {
	s := newServer(t)

	w, env := s.do(s.jsonRequest(http.MethodPost, "/api/orders", validOrder(), ""))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, env.Success)
	var created struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q="+created.OrderID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var orders []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, created.OrderID, orders[0].ID)
	assert.Equal(t, "PENDING", orders[0].Status)

	w, _ = s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q=missing@x.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestTrackRequiresTerm(t *testing.T) {
	s := newServer(t)
	w, env := s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q=%20", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Order ID or email is required", env.Error)
}

func TestSubmitOrderValidation(t *testing.T) {
	s := newServer(t)
	cases := map[string]func(gin.H){
		"short details": func(b gin.H) { b["projectDetails"] = "too short" },
		"bad email":     func(b gin.H) { b["customerEmail"] = "nope" },
		"no service":    func(b gin.H) { delete(b, "service") },
		"bad phone":     func(b gin.H) { b["customerPhone"] = "call me" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			body := validOrder()
			mutate(body)
			w, env := s.do(s.jsonRequest(http.MethodPost, "/api/orders", body, ""))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestSubmitOrderMultipartSlip(t *testing.T) {
	s := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range validOrder() {
		require.NoError(t, mw.WriteField(k, v.(string)))
	}
	require.NoError(t, mw.WriteField("customerPhone", "+1 (555) 010-0199"))
	part, err := mw.CreateFormFile("paymentSlip", "slip.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nrest-of-image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, env := s.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, env.Success)

	w, env = s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q=customer@x.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var orders []struct {
		PaymentSlip string `json:"paymentSlip"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.True(t, strings.HasPrefix(orders[0].PaymentSlip, "data:image/png;base64,"), orders[0].PaymentSlip)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/admin/orders", "/api/admin/dashboard", "/api/admin/services", "/auth/me"} {
		w, env := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.False(t, env.Success)
	}

	w, _ := s.do(s.jsonRequest(http.MethodGet, "/api/admin/orders", nil, "not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	forged, err := utils.GenerateToken(utils.TokenConfig{Secret: []byte("other"), Expiry: time.Hour}, "x", "x@x.com")
	require.NoError(t, err)
	w, _ = s.do(s.jsonRequest(http.MethodGet, "/api/admin/orders", nil, forged))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin(t *testing.T) {
	s := newServer(t)

	w, env := s.do(s.jsonRequest(http.MethodPost, "/auth/login",
		gin.H{"email": adminEmail, "password": "wrong"}, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Error)

	w, _ = s.do(s.jsonRequest(http.MethodPost, "/auth/login",
		gin.H{"email": adminEmail, "password": adminPassword}, ""))
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.TokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookie, Value: cookie.Value})
	w, env = s.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, adminEmail, me.Email)
}

func TestAdminCatalogAndOrders(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w, env := s.do(s.jsonRequest(http.MethodPost, "/api/admin/services", gin.H{
		"name":     "Logo",
		"price":    299,
		"features": []string{"A", " ", "B"},
	}, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var service struct {
		ID       string   `json:"id"`
		Features []string `json:"features"`
		Active   bool     `json:"active"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &service))
	assert.Equal(t, []string{"A", "B"}, service.Features)
	assert.True(t, service.Active)

	w, env = s.do(s.jsonRequest(http.MethodPost, "/api/admin/services", gin.H{"name": "Free", "price": -5}, token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "price must not be negative", env.Error)

	order := validOrder()
	order["service"] = service.ID
	w, env = s.do(s.jsonRequest(http.MethodPost, "/api/orders", order, ""))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = s.do(s.jsonRequest(http.MethodGet, "/api/admin/orders", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	var views []struct {
		ServiceName string `json:"serviceName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Logo", views[0].ServiceName)

	statusPath := "/api/admin/orders/" + created.OrderID + "/status"
	w, _ = s.do(s.jsonRequest(http.MethodPatch, statusPath, gin.H{"status": "COMPLETED"}, token))
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(s.jsonRequest(http.MethodPatch, statusPath, gin.H{"status": "LOST"}, token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, _ = s.do(s.jsonRequest(http.MethodPut, "/api/admin/orders/"+created.OrderID,
		gin.H{"projectDetails": "Updated brief for the bakery"}, token))
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(s.jsonRequest(http.MethodGet, "/api/admin/dashboard", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, int64(1), summary.Total)

	w, _ = s.do(s.jsonRequest(http.MethodDelete, "/api/admin/services/"+service.ID, nil, token))
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(s.jsonRequest(http.MethodDelete, "/api/admin/services/"+service.ID, nil, token))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service not found", env.Error)

	w, _ = s.do(s.jsonRequest(http.MethodDelete, "/api/admin/orders/"+created.OrderID, nil, token))
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(s.jsonRequest(http.MethodDelete, "/api/admin/orders/"+created.OrderID, nil, token))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitOrderMultipartTextSlip(t *testing.T) {
	s := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range validOrder() {
		require.NoError(t, mw.WriteField(k, v.(string)))
	}
	require.NoError(t, mw.WriteField("paymentSlip", "data:image/jpeg;base64,AQI="))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, _ := s.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	_, env := s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q=customer@x.com", nil))
	var orders []struct {
		PaymentSlip string `json:"paymentSlip"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "data:image/jpeg;base64,AQI=", orders[0].PaymentSlip)
}

func TestAdminUpdateOrderValidation(t *testing.T) {
	s := newServer(t)
	token := s.login()

	body := validOrder()
	body["customerPhone"] = "+15550100199"
	w, env := s.do(s.jsonRequest(http.MethodPost, "/api/orders", body, ""))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	path := "/api/admin/orders/" + created.OrderID

	for name, patch := range map[string]gin.H{
		"short details": {"projectDetails": "too short"},
		"bad phone":     {"customerPhone": "call me"},
		"bad email":     {"customerEmail": "nope"},
	} {
		t.Run(name, func(t *testing.T) {
			w, env := s.do(s.jsonRequest(http.MethodPut, path, patch, token))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
		})
	}

	w, _ = s.do(s.jsonRequest(http.MethodPut, path, gin.H{"customerPhone": ""}, token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, env = s.do(httptest.NewRequest(http.MethodGet, "/api/orders/track?q="+created.OrderID, nil))
	var orders []struct {
		ProjectDetails string  `json:"projectDetails"`
		CustomerPhone  *string `json:"customerPhone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].CustomerPhone)
	assert.Equal(t, "A logo for my coffee shop, warm colors", orders[0].ProjectDetails)
}
