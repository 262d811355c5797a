package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sosw-app/sosw/internal/models"
	"gorm.io/gorm"
)

const testPassword = "abcdefgh"

func performJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return response
}

type uploadPart struct {
	Name string
	Data []byte
}

func performUploadRequest(t *testing.T, app *fiber.App, path string, token string, parts []uploadPart) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if len(parts) == 0 {
		if err := writer.WriteField("note", "empty-batch"); err != nil {
			t.Fatalf("write placeholder field: %v", err)
		}
	}
	for _, part := range parts {
		formFile, err := writer.CreateFormFile("files", part.Name)
		if err != nil {
			t.Fatalf("create form file %s: %v", part.Name, err)
		}
		if _, err := formFile.Write(part.Data); err != nil {
			t.Fatalf("write form file %s: %v", part.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Accept", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upload request %s failed: %v", path, err)
	}
	return response
}

func signUpTestUser(t *testing.T, ta *testApp, email string) {
	t.Helper()

	payload := map[string]any{
		"email":         email,
		"full_name":     "Jane Doe",
		"gender":        "f",
		"date_of_birth": "19900101",
		"password":      testPassword,
	}
	response := performJSONRequest(t, ta.app, http.MethodPost, "/api/auth/signup", payload, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("signup for %s: expected status 201, got %d", email, response.StatusCode)
	}
}

func signInTestUser(t *testing.T, ta *testApp, email string, password string) string {
	t.Helper()

	payload := map[string]any{"email": email, "password": password}
	response := performJSONRequest(t, ta.app, http.MethodPost, "/api/auth/signin", payload, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("signin for %s: expected status 200, got %d", email, response.StatusCode)
	}

	body := decodeJSONMap(t, response.Body)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("signin for %s: expected non-empty token", email)
	}
	return token
}

func promoteTestAdmin(t *testing.T, database *gorm.DB, email string) {
	t.Helper()

	result := database.Model(&models.User{}).Where("email = ?", email).Update("role", models.RoleAdmin)
	if result.Error != nil {
		t.Fatalf("promote %s to admin: %v", email, result.Error)
	}
	if result.RowsAffected != 1 {
		t.Fatalf("promote %s to admin: expected 1 row, got %d", email, result.RowsAffected)
	}
}

func userIDByEmail(t *testing.T, database *gorm.DB, email string) uint {
	t.Helper()

	var user models.User
	if err := database.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user.ID
}

func decodeJSONMap(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return payload
}

func readFieldErrors(t *testing.T, body io.Reader) map[string]string {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := map[string]string{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode field errors %q: %v", raw, err)
	}
	return payload
}

func selfReportTestPayload() map[string]any {
	return map[string]any{
		"timestamp":      int64(1700000000000),
		"stress_level":   2,
		"valence":        -1,
		"arousal":        1,
		"activity":       "working",
		"location":       "office",
		"social_context": "alone",
	}
}

func requireStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d (body %s)", expected, response.StatusCode, string(raw))
	}
}
