package domain

import (
	"strings"
	"testing"
)

func TestPost_Validate(t *testing.T) {
	testCases := []struct {
		name string
		post Post
		err  bool
	}{
		{"valid", Post{Title: "My Journey", Content: "Long enough content", UserID: 1}, false},
		{"title too short", Post{Title: "ab", Content: "Long enough content", UserID: 1}, true},
		{"title too long", Post{Title: strings.Repeat("a", 256), Content: "Long enough content", UserID: 1}, true},
		{"title at max", Post{Title: strings.Repeat("a", 255), Content: "Long enough content", UserID: 1}, false},
		{"content too short", Post{Title: "My Journey", Content: "ab", UserID: 1}, true},
		{"zero user id", Post{Title: "My Journey", Content: "Long enough content", UserID: 0}, true},
		{"negative user id", Post{Title: "My Journey", Content: "Long enough content", UserID: -4}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.post.Validate()
			if tc.err && err == nil {
				t.Error("Validate should return error")
			}
			if !tc.err && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
