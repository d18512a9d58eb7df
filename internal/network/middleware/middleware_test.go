package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/helpers"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:TEST-TOKEN"

func init() {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
}

// signInitData подписывает init-data так же, как это делает Telegram
func signInitData(values url.Values, token string) string {
	pairs := make([]string, 0, len(values))
	for k, v := range values {
		pairs = append(pairs, k+"="+v[0])
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(token))
	sign := hmac.New(sha256.New, secret.Sum(nil))
	sign.Write([]byte(strings.Join(pairs, "\n")))

	signed := url.Values{}
	for k, v := range values {
		signed[k] = v
	}
	signed.Set("hash", hex.EncodeToString(sign.Sum(nil)))
	return signed.Encode()
}

func initDataFor(user string, authDate time.Time) url.Values {
	return url.Values{
		"auth_date": {strconv.FormatInt(authDate.Unix(), 10)},
		"query_id":  {"AAHdF6IQAAAAAN0XohDhrOrc"},
		"user":      {user},
	}
}

func TestInitData(t *testing.T) {
	now := time.Now()
	valid := signInitData(initDataFor(`{"id":1000,"first_name":"Admin"}`, now), testBotToken)

	testCases := []struct {
		Name         string
		Header       string
		Query        string
		ExpectedCode int
		ExpectedUser int64
	}{
		{
			Name:         "Error. Missing init data #1",
			ExpectedCode: http.StatusForbidden,
		},
		{
			Name:         "Error. Signed by another bot #2",
			Header:       signInitData(initDataFor(`{"id":1000}`, now), "654321:OTHER"),
			ExpectedCode: http.StatusForbidden,
		},
		{
			Name:         "Error. Expired init data #3",
			Header:       signInitData(initDataFor(`{"id":1000}`, now.Add(-48*time.Hour)), testBotToken),
			ExpectedCode: http.StatusForbidden,
		},
		{
			Name:         "Error. Tampered user #4",
			Header:       strings.Replace(valid, "%3A1000", "%3A1001", 1),
			ExpectedCode: http.StatusForbidden,
		},
		{
			Name:         "Error. No user in init data #5",
			Header:       signInitData(initDataFor(`{"first_name":"Ghost"}`, now), testBotToken),
			ExpectedCode: http.StatusForbidden,
		},
		{
			Name:         "Success. Header #6",
			Header:       valid,
			ExpectedCode: http.StatusOK,
			ExpectedUser: 1000,
		},
		{
			Name:         "Success. Query parameter #7",
			Query:        "?init_data=" + url.QueryEscape(valid),
			ExpectedCode: http.StatusOK,
			ExpectedUser: 1000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var gotUser int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := helpers.GetTelegramUserID(r.Context())
				require.True(t, ok)
				gotUser = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/pending"+tc.Query, nil)
			if tc.Header != "" {
				req.Header.Set(InitDataHeader, tc.Header)
			}
			rec := httptest.NewRecorder()
			InitData(testBotToken, 24*time.Hour)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.ExpectedCode, rec.Code)
			assert.Equal(t, tc.ExpectedUser, gotUser)
			if tc.ExpectedCode != http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestLogHandle(t *testing.T) {
	t.Run("Generates request id", func(t *testing.T) {
		var ctxID string
		h := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = helpers.GetRequestID(r.Context())
			_, _ = w.Write([]byte("ok"))
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, ctxID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Keeps incoming request id", func(t *testing.T) {
		h := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}
