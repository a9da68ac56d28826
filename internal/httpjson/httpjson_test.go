package httpjson

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type samplePayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestDecode_Valid(t *testing.T) {
	r := httptest.NewRequest("POST", "/users", strings.NewReader(
		`{"name":"John Doe","email":"john.doe@example.com","password":"password123"}`))
	var p samplePayload
	if err := Decode(r, &p); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", p.Name, "John Doe")
	}
}

func TestDecode_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"name":`, "invalid JSON body"},
		{"unknown field", `{"name":"x","email":"a@b.co","password":"password123","admin":true}`, "invalid JSON body"},
		{"missing name", `{"email":"a@b.co","password":"password123"}`, "name (required)"},
		{"bad email", `{"name":"x","email":"nope","password":"password123"}`, "email (email)"},
		{"short password", `{"name":"x","email":"a@b.co","password":"short"}`, "password (min)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/users", strings.NewReader(tc.body))
			var p samplePayload
			err := Decode(r, &p)
			if err == nil {
				t.Fatal("Decode should return error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, should contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestWriteAndMessage(t *testing.T) {
	w := httptest.NewRecorder()
	Message(w, 201, "User created")
	if w.Code != 201 {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(w.Body.String(), `"message":"User created"`) {
		t.Errorf("body = %q, want message envelope", w.Body.String())
	}

	w = httptest.NewRecorder()
	Error(w, 404, "user not found")
	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error":"user not found"`) {
		t.Errorf("body = %q, want error envelope", w.Body.String())
	}
}
