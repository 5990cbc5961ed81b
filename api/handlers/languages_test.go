package handlers

import (
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestLanguagesHandler_ListLanguages(t *testing.T) {
	handler := NewLanguagesHandler()
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/languages")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"default":"en"`) {
		t.Errorf("default language missing: %s", body)
	}
	if !strings.Contains(body, `"code":"en"`) || !strings.Contains(body, `"name":"English"`) {
		t.Errorf("catalog should include English: %s", body)
	}
}
