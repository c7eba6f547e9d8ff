package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmahub/memstore"
	"pharmahub/middleware"
	"pharmahub/models"
)

const registerBody = `{"fullname":"Nguyễn Văn A","email":"nguyenvana@gmail.com","phone":"0901234567","password":"123456","confirmPassword":"123456"}`

func doRegister(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	api.Register(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)), nil)
	return w
}

func doLogin(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	api.Login(w, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)), nil)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}

	w := doRegister(t, api, registerBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var reg struct {
		Success     bool              `json:"success"`
		AccessToken string            `json:"accessToken"`
		User        models.PublicUser `json:"user"`
	}
	json.NewDecoder(w.Body).Decode(&reg)
	if !reg.Success || reg.AccessToken == "" {
		t.Fatalf("register response missing token: %+v", reg)
	}
	if reg.User.ID == 0 || reg.User.Email != "nguyenvana@gmail.com" {
		t.Errorf("register user = %+v", reg.User)
	}

	// the token identifies the new user
	claims, err := middleware.ValidateJWT(reg.AccessToken)
	if err != nil {
		t.Fatalf("issued token fails validation: %v", err)
	}
	if claims.UserID != reg.User.ID || claims.Role != "user" {
		t.Errorf("claims = %+v, want id %d role user", claims, reg.User.ID)
	}

	w = doLogin(t, api, `{"email":"nguyenvana@gmail.com","password":"123456"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}

	cases := []struct {
		name, body string
		wantCode   int
	}{
		{"blank fields", `{"fullname":"","email":"a@b.vn","phone":"0901234567","password":"x","confirmPassword":"x"}`, http.StatusBadRequest},
		{"password mismatch", `{"fullname":"A","email":"a@b.vn","phone":"0901234567","password":"123456","confirmPassword":"654321"}`, http.StatusBadRequest},
		{"bad email", `{"fullname":"A","email":"not an email","phone":"0901234567","password":"x","confirmPassword":"x"}`, http.StatusBadRequest},
		{"bad phone", `{"fullname":"A","email":"a@b.vn","phone":"12345","password":"x","confirmPassword":"x"}`, http.StatusBadRequest},
	}
	for _, c := range cases {
		if w := doRegister(t, api, c.body); w.Code != c.wantCode {
			t.Errorf("%s: expected %d, got %d", c.name, c.wantCode, w.Code)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}

	if w := doRegister(t, api, registerBody); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	if w := doRegister(t, api, registerBody); w.Code != http.StatusConflict {
		t.Errorf("duplicate register: expected 409, got %d", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := &API{Users: memstore.NewUsers(memstore.SeedUsers()...)}

	// same body for unknown email and wrong password: both are a plain 401
	for _, body := range []string{
		`{"email":"nobody@gmail.com","password":"123456"}`,
		`{"email":"nguyenvana@gmail.com","password":"wrong"}`,
	} {
		w := doLogin(t, api, body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d for %s", w.Code, body)
		}
		if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "123456") {
			t.Errorf("response leaks credential details: %s", w.Body.String())
		}
	}
}

func TestStoredPasswordIsHashed(t *testing.T) {
	users := memstore.NewUsers()
	api := &API{Users: users}
	doRegister(t, api, registerBody)

	stored, err := users.GetByEmail(context.Background(), "nguyenvana@gmail.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Password == "123456" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Errorf("stored password %q is not a bcrypt hash", stored.Password[:4])
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}
	w := doRegister(t, api, registerBody)

	if strings.Contains(w.Body.String(), "123456") || strings.Contains(w.Body.String(), "password") {
		t.Errorf("register response carries password material: %s", w.Body.String())
	}
}

func TestMeResolvesIdentityThroughMiddleware(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}
	w := doRegister(t, api, registerBody)
	var reg struct {
		AccessToken string `json:"accessToken"`
	}
	json.NewDecoder(w.Body).Decode(&reg)

	handler := middleware.Authenticate(api.Me)

	w = httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+reg.AccessToken)
	handler(w, r, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var me struct {
		Authenticated bool              `json:"authenticated"`
		User          models.PublicUser `json:"user"`
	}
	json.NewDecoder(w.Body).Decode(&me)
	if !me.Authenticated || me.User.Email != "nguyenvana@gmail.com" {
		t.Errorf("me = %+v", me)
	}

	// no token, bad scheme, garbage token: all 401
	for _, header := range []string{"", "Basic abc", "Bearer not.a.token"} {
		w = httptest.NewRecorder()
		r = httptest.NewRequest("GET", "/api/auth/me", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		handler(w, r, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRefreshToken(t *testing.T) {
	api := &API{Users: memstore.NewUsers()}
	w := doRegister(t, api, registerBody)
	var reg struct {
		AccessToken string `json:"accessToken"`
	}
	json.NewDecoder(w.Body).Decode(&reg)

	w = httptest.NewRecorder()
	api.RefreshToken(w, httptest.NewRequest("POST", "/api/auth/refresh",
		strings.NewReader(`{"token":"`+reg.AccessToken+`"}`)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var refreshed struct {
		AccessToken string `json:"accessToken"`
	}
	json.NewDecoder(w.Body).Decode(&refreshed)
	if refreshed.AccessToken == "" {
		t.Fatal("refresh returned no token")
	}
	if _, err := middleware.ValidateJWT(refreshed.AccessToken); err != nil {
		t.Errorf("refreshed token fails validation: %v", err)
	}

	w = httptest.NewRecorder()
	api.RefreshToken(w, httptest.NewRequest("POST", "/api/auth/refresh",
		strings.NewReader(`{"token":"garbage"}`)), nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage refresh: expected 401, got %d", w.Code)
	}
}
