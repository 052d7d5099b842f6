package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/provider"
	"github.com/foodgo-next/internal/repository"
	"github.com/foodgo-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAddressHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:address_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Address{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	container := &provider.Container{
		AddressService: service.NewAddressService(repository.NewAddressRepository(db)),
	}
	h := New(container)

	r := gin.New()
	r.POST("/api/v1/addresses", h.CreateAddress)
	r.GET("/api/v1/addresses/:id", h.GetAddress)
	r.GET("/api/v1/users/:uid/addresses/default", h.GetUserDefaultAddress)
	return r
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v, body: %s", err, w.Body.String())
	}
	return w, resp
}

func TestCreateAddressHandler(t *testing.T) {
	r := setupAddressHandlerTest(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/addresses",
		`{"user_uid":"user-a","address":"幸福路 1 号","receiver":"张三"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d, msg %s", resp.StatusCode, resp.Msg)
	}

	var address models.Address
	if err := json.Unmarshal(resp.Data, &address); err != nil {
		t.Fatalf("unmarshal address failed: %v", err)
	}
	if !address.IsDefault {
		t.Fatalf("first address should be default")
	}
}

func TestCreateAddressHandlerDuplicateConflict(t *testing.T) {
	r := setupAddressHandlerTest(t)

	if _, resp := doJSON(t, r, http.MethodPost, "/api/v1/addresses",
		`{"user_uid":"user-b","address":"重复路 9 号"}`); resp.StatusCode != 0 {
		t.Fatalf("first create failed: %d %s", resp.StatusCode, resp.Msg)
	}

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/addresses",
		`{"user_uid":"user-b","address":"重复路 9 号"}`)
	if resp.StatusCode != 409 {
		t.Fatalf("status_code want 409 got %d", resp.StatusCode)
	}
}

func TestCreateAddressHandlerBadRequest(t *testing.T) {
	r := setupAddressHandlerTest(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/addresses", `{"user_uid":"user-c"}`)
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}

func TestGetDefaultAddressHandlerNotFound(t *testing.T) {
	r := setupAddressHandlerTest(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/users/nobody/addresses/default", "")
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestGetAddressHandlerInvalidID(t *testing.T) {
	r := setupAddressHandlerTest(t)

	_, resp := doJSON(t, r, http.MethodGet, "/api/v1/addresses/abc", "")
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}
