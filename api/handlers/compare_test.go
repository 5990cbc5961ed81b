package handlers

import (
	"context"
	"strings"
	"testing"

	"docextract-app-api/core/domain"
	"docextract-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2/humatest"
)

func textOutcome(filename, text string) *domain.Outcome {
	return &domain.Outcome{
		Filename: filename,
		JobID:    "job12345",
		Document: &domain.Document{NumPages: 1, Text: text, Markdown: text},
	}
}

func TestCompareHandler_RegisterRoutes(t *testing.T) {
	handler := NewCompareHandler(&mockExtractionService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/compare"] == nil || openapi.Paths["/compare"].Post == nil {
		t.Error("POST /compare endpoint not registered")
	}
}

func TestCompareHandler_CompareDocuments(t *testing.T) {
	texts := map[string]string{
		"old.pdf": "alpha\nbeta",
		"new.pdf": "alpha\ngamma",
	}
	mockService := &mockExtractionService{
		processFunc: func(ctx context.Context, req domain.DocumentRequest) *domain.Outcome {
			return textOutcome(req.Filename, texts[req.Filename])
		},
	}

	handler := NewCompareHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/compare", map[string]interface{}{
		"doc1": map[string]interface{}{"filename": "old.pdf", "content": []byte("a")},
		"doc2": map[string]interface{}{"filename": "new.pdf", "content": []byte("b")},
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"doc1_name":"old.pdf"`) || !strings.Contains(body, `"doc2_name":"new.pdf"`) {
		t.Errorf("report should carry the filenames: %s", body)
	}
	if !strings.Contains(body, `"added_lines":1`) || !strings.Contains(body, `"removed_lines":1`) {
		t.Errorf("diff counts missing: %s", body)
	}
}

func TestCompareHandler_CompareDocuments_ExtractionFailure(t *testing.T) {
	mockService := &mockExtractionService{
		processFunc: func(ctx context.Context, req domain.DocumentRequest) *domain.Outcome {
			return &domain.Outcome{
				Filename: req.Filename,
				Err:      errors.New(errors.KindCorrupt, "cannot parse document"),
			}
		},
	}

	handler := NewCompareHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/compare", map[string]interface{}{
		"doc1": map[string]interface{}{"filename": "old.pdf", "content": []byte("a")},
		"doc2": map[string]interface{}{"filename": "new.pdf", "content": []byte("b")},
	})

	if resp.Code != 422 {
		t.Errorf("Expected status 422, got %d", resp.Code)
	}
}

func TestCompareHandler_CompareDocuments_MissingDocument(t *testing.T) {
	handler := NewCompareHandler(&mockExtractionService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/compare", map[string]interface{}{
		"doc1": map[string]interface{}{"filename": "old.pdf", "content": []byte("a")},
	})

	if resp.Code != 422 {
		t.Errorf("Expected status 422 for missing doc2, got %d", resp.Code)
	}
}
