package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/alligator-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// newJSONContext builds an echo context for a JSON request
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// newMultipartContext builds an echo context for a multipart form request.
// fileField/fileName/fileBody attach a file part when fileField is non-empty.
func newMultipartContext(target string, fields map[string]string, fileField, fileName, fileBody string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if fileField != "" {
		part, _ := w.CreateFormFile(fileField, fileName)
		_, _ = io.Copy(part, strings.NewReader(fileBody))
	}
	_ = w.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser stamps the context with the claims JWTAuthMiddleware would set
func asUser(c echo.Context, userID string) {
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
}
