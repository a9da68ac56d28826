package domain

import "testing"

func TestUser_Validate(t *testing.T) {
	testCases := []struct {
		name string
		user User
		err  bool
	}{
		{"valid", User{Name: "John Doe", Email: "john.doe@example.com", PasswordHash: "$2a$12$x"}, false},
		{"missing name", User{Email: "john.doe@example.com", PasswordHash: "$2a$12$x"}, true},
		{"missing email", User{Name: "John Doe", PasswordHash: "$2a$12$x"}, true},
		{"missing hash", User{Name: "John Doe", Email: "john.doe@example.com"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.err && err == nil {
				t.Error("Validate should return error")
			}
			if !tc.err && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
