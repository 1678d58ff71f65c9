// file: internal/api/books_test.go
// version: 1.1.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/jdfalk/library-console/internal/models"
)

func TestClient_ListBooks_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"books":[],"total":0,"pages":1,"current_page":1}`))
	}))
	defer server.Close()

	filters := map[string]string{
		"author": "Tolkien",
		"status": "Available",
		"blank":  "",
	}
	if _, err := NewClient(server.URL).ListBooks(context.Background(), 3, 100, filters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["page"]; !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("expected page=3, got %v", got)
	}
	if got := gotQuery["per_page"]; !reflect.DeepEqual(got, []string{"100"}) {
		t.Errorf("expected per_page=100, got %v", got)
	}
	if got := gotQuery["author"]; !reflect.DeepEqual(got, []string{"Tolkien"}) {
		t.Errorf("expected author filter, got %v", got)
	}
	if got := gotQuery["status"]; !reflect.DeepEqual(got, []string{"Available"}) {
		t.Errorf("expected status filter, got %v", got)
	}
	if _, present := gotQuery["blank"]; present {
		t.Error("blank filter values must be omitted")
	}
}

func TestClient_ListBooks_DecodesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"books":[{"library_id":7,"bookName":"Dune","author":"Herbert","category":"Sci-Fi","status":"Available"}],
			"total":142,"pages":2,"current_page":2
		}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).ListBooks(context.Background(), 2, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 142 || resp.Pages != 2 || resp.CurrentPage != 2 {
		t.Errorf("unexpected pagination: %+v", resp)
	}
	if len(resp.Books) != 1 || resp.Books[0].Key() != 7 {
		t.Errorf("unexpected books: %+v", resp.Books)
	}
}

func TestClient_BulkDeleteBooks_Body(t *testing.T) {
	var gotBody models.BulkDeleteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/bulk-delete" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":"3 books deleted"}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).BulkDeleteBooks(context.Background(), []int{4, 8, 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(gotBody.BookIDs, []int{4, 8, 15}) {
		t.Errorf("unexpected ids: %v", gotBody.BookIDs)
	}
	if resp.Message != "3 books deleted" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestClient_IssueAndReturn_Paths(t *testing.T) {
	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	issue := models.IssueRequest{MemberName: "Sam", IssueDate: "2026-08-01", ReturnDate: "2026-08-15"}
	if err := client.IssueBook(context.Background(), 12, issue); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := client.ReturnBook(context.Background(), 12, models.ReturnRequest{ActualReturnDate: "2026-08-10"}); err != nil {
		t.Fatalf("return: %v", err)
	}

	want := []string{"POST /api/books/12/issue", "POST /api/books/12/return"}
	if !reflect.DeepEqual(gotPaths, want) {
		t.Errorf("expected %v, got %v", want, gotPaths)
	}
}

func TestClient_RenameItem_Body(t *testing.T) {
	var gotBody map[string]string
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	if err := NewClient(server.URL).RenameItem(context.Background(), "/categories", 9, "Fantasy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/categories/9" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody["name"] != "Fantasy" {
		t.Errorf("unexpected body %v", gotBody)
	}
}
