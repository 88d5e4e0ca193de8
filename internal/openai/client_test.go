// ABOUTME: Tests for the food analysis client against a local httptest server.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func analysisServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth header = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", req.Model)
		}

		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%s}}]}`, strconv.Quote(content))
	}))
}

func TestAnalyzeFood(t *testing.T) {
	srv := analysisServer(t, `{"calories": 650, "protein": 32, "quality": 2, "is_junk_food": true, "insights": "High sodium."}`)
	defer srv.Close()

	c := NewClientWithBaseURL("sk-test", srv.URL)
	got, err := c.AnalyzeFood(context.Background(), "double cheeseburger and fries")
	if err != nil {
		t.Fatalf("AnalyzeFood: %v", err)
	}

	if got.Calories != 650 || got.Protein != 32 || got.Quality != 2 {
		t.Errorf("analysis mismatch: %+v", got)
	}
	if !got.IsJunkFood {
		t.Error("expected junk food flag")
	}
	if got.Insights != "High sodium." {
		t.Errorf("insights = %q", got.Insights)
	}
}

func TestAnalyzeFoodClampsQuality(t *testing.T) {
	srv := analysisServer(t, `{"calories": 100, "protein": 5, "quality": 11, "is_junk_food": false, "insights": ""}`)
	defer srv.Close()

	c := NewClientWithBaseURL("sk-test", srv.URL)
	got, err := c.AnalyzeFood(context.Background(), "an apple")
	if err != nil {
		t.Fatal(err)
	}
	if got.Quality != 5 {
		t.Errorf("quality should clamp to 5, got %d", got.Quality)
	}
}

func TestAnalyzeFoodEmptyDescription(t *testing.T) {
	c := NewClient("sk-test")
	if _, err := c.AnalyzeFood(context.Background(), "   "); err == nil {
		t.Fatal("blank description should error without a request")
	}
}

func TestAnalyzeFoodAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided"}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("sk-bad", srv.URL)
	_, err := c.AnalyzeFood(context.Background(), "toast")
	if err == nil {
		t.Fatal("api error should propagate")
	}
}

func TestAnalyzeFoodUnparseableContent(t *testing.T) {
	srv := analysisServer(t, `sorry, I can't help with that`)
	defer srv.Close()

	c := NewClientWithBaseURL("sk-test", srv.URL)
	if _, err := c.AnalyzeFood(context.Background(), "toast"); err == nil {
		t.Fatal("non-JSON content should error")
	}
}
