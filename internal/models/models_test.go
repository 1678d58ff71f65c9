// file: internal/models/models_test.go
// version: 1.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package models

import (
	"encoding/json"
	"testing"
)

func TestBook_Key(t *testing.T) {
	if got := (Book{LibraryID: 7, ID: 3}).Key(); got != 7 {
		t.Errorf("library_id must win, got %d", got)
	}
	if got := (Book{ID: 3}).Key(); got != 3 {
		t.Errorf("expected id fallback, got %d", got)
	}
}

func TestBookCreateRequest_OmitsUnsetOptionals(t *testing.T) {
	data, err := json.Marshal(BookCreateRequest{
		BookName: "Dune", Author: "Herbert", Category: "Sci-Fi",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"volumes", "year", "copies", "publisher_id"} {
		if containsField(data, field) {
			t.Errorf("unset %s must be omitted, got %s", field, data)
		}
	}
}

func containsField(data []byte, field string) bool {
	var m map[string]interface{}
	_ = json.Unmarshal(data, &m)
	_, ok := m[field]
	return ok
}
