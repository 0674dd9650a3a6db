package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Aben-G/E-commerce-main/internal/models"
)

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func doJSONRequest(t *testing.T, method, target string, payload any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		bodyBytes, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(bodyBytes)
	} else {
		body = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, c
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	return he
}
