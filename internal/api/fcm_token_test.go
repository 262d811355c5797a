package api

import (
	"io"
	"net/http"
	"testing"

	"github.com/sosw-app/sosw/internal/models"
)

func TestSetFcmTokenRequiresAuth(t *testing.T) {
	ta := newTestApp(t)

	response := performJSONRequest(t, ta.app, http.MethodPut, "/api/auth/fcm-token",
		map[string]any{"fcm_token": "device-token"}, "")
	defer response.Body.Close()

	requireStatus(t, response, http.StatusUnauthorized)
}

func TestSetFcmTokenPersistsToken(t *testing.T) {
	ta := newTestApp(t)
	signUpTestUser(t, ta, "device@example.com")
	token := signInTestUser(t, ta, "device@example.com", testPassword)

	response := performJSONRequest(t, ta.app, http.MethodPut, "/api/auth/fcm-token",
		map[string]any{"fcm_token": "registration-token-42"}, token)
	defer response.Body.Close()

	requireStatus(t, response, http.StatusOK)
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(body) != 0 {
		t.Fatalf("expected an empty success body, got %q", body)
	}

	var user models.User
	if err := ta.database.Where("email = ?", "device@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.FcmToken != "registration-token-42" {
		t.Fatalf("expected stored token, got %q", user.FcmToken)
	}
}

func TestSetFcmTokenReplacesPreviousToken(t *testing.T) {
	ta := newTestApp(t)
	signUpTestUser(t, ta, "rotate@example.com")
	token := signInTestUser(t, ta, "rotate@example.com", testPassword)

	for _, registration := range []string{"first-token", "second-token"} {
		response := performJSONRequest(t, ta.app, http.MethodPut, "/api/auth/fcm-token",
			map[string]any{"fcm_token": registration}, token)
		requireStatus(t, response, http.StatusOK)
		response.Body.Close()
	}

	var user models.User
	if err := ta.database.Where("email = ?", "rotate@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.FcmToken != "second-token" {
		t.Fatalf("expected latest token to win, got %q", user.FcmToken)
	}
}

func TestSetFcmTokenRejectsBlankToken(t *testing.T) {
	ta := newTestApp(t)
	signUpTestUser(t, ta, "blank@example.com")
	token := signInTestUser(t, ta, "blank@example.com", testPassword)

	response := performJSONRequest(t, ta.app, http.MethodPut, "/api/auth/fcm-token",
		map[string]any{"fcm_token": "   "}, token)
	defer response.Body.Close()

	requireStatus(t, response, http.StatusBadRequest)
	errs := readFieldErrors(t, response.Body)
	if errs["fcm_token"] != "This field is required" {
		t.Fatalf("unexpected fcm_token error: %q", errs["fcm_token"])
	}
}
