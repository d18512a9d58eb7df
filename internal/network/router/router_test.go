package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/network/middleware"
	"github.com/denmor86/tg-ledger/internal/storage/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	cfg.Admin.AdminID = 1000

	t.Run("Health", func(t *testing.T) {
		mockStorage.EXPECT().Ping(gomock.Any()).Return(nil)

		srv := httptest.NewServer(NewRouter(cfg, mockStorage).HandleRouter())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/health")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("Non admin decision is forbidden", func(t *testing.T) {
		srv := httptest.NewServer(NewRouter(cfg, mockStorage).HandleRouter())
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/api/admin/decision", "application/json",
			strings.NewReader(`{"adminId":5,"requestType":"deposit","requestId":1,"action":"approve"}`))
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Pending for admin", func(t *testing.T) {
		mockStorage.EXPECT().GetPendingRequests(gomock.Any(), models.KindDeposit, gomock.Any()).Return(nil, nil)
		mockStorage.EXPECT().GetPendingRequests(gomock.Any(), models.KindWithdraw, gomock.Any()).Return(nil, nil)

		srv := httptest.NewServer(NewRouter(cfg, mockStorage).HandleRouter())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/admin/pending?adminId=1000")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Admin routes require init data when bot token is set", func(t *testing.T) {
		withToken := cfg
		withToken.Admin.BotToken = "123456:TEST-TOKEN"

		srv := httptest.NewServer(NewRouter(withToken, mockStorage).HandleRouter())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/admin/pending?adminId=1000")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		srv := httptest.NewServer(NewRouter(cfg, mockStorage).HandleRouter())
		defer srv.Close()

		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/deposit/request", nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Origin", "https://app.example.org")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("CORS restricted origins", func(t *testing.T) {
		restricted := cfg
		restricted.Server.CORSAllowedOrigins = []string{"https://app.example.org"}
		mockStorage.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)

		srv := httptest.NewServer(NewRouter(restricted, mockStorage).HandleRouter())
		defer srv.Close()

		for origin, expected := range map[string]string{
			"https://app.example.org":  "https://app.example.org",
			"https://evil.example.org": "",
		} {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Origin", origin)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			assert.Equal(t, expected, resp.Header.Get("Access-Control-Allow-Origin"), origin)
		}
	})

	t.Run("Unknown route", func(t *testing.T) {
		srv := httptest.NewServer(NewRouter(cfg, mockStorage).HandleRouter())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/orders")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
