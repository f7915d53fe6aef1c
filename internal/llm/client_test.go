package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionResponse(content string) string {
	resp := chatCompletionResponse{}
	resp.Choices = append(resp.Choices, struct {
		Message chatCompletionMessage `json:"message"`
	}{Message: chatCompletionMessage{Role: "assistant", Content: content}})
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGenerate(t *testing.T) {
	var gotAuth string
	var gotRequest chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotRequest)
		w.Write([]byte(completionResponse("generated text")))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "test-key", "test-model", 1)
	text, err := client.Generate(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if text != "generated text" {
		t.Errorf("Expected 'generated text', got %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if gotRequest.Model != "test-model" {
		t.Errorf("Expected model test-model, got %q", gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 || gotRequest.Messages[0].Role != "system" || gotRequest.Messages[1].Role != "user" {
		t.Errorf("Unexpected message layout: %+v", gotRequest.Messages)
	}
}

func TestGenerateRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(completionResponse("ok")))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", "test-model", 3)
	text, err := client.Generate(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Generate failed after retries: %v", err)
	}
	if text != "ok" {
		t.Errorf("Expected 'ok', got %q", text)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", "test-model", 2)
	if _, err := client.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", "test-model", 1)
	if _, err := client.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestGenerateJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("```json\n{\"name\": \"value\"}\n```")))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", "test-model", 1)
	var out struct {
		Name string `json:"name"`
	}
	if err := client.GenerateJSON(context.Background(), "s", "u", &out); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}
	if out.Name != "value" {
		t.Errorf("Expected 'value', got %q", out.Name)
	}
}

func TestGenerateJSONMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("not json at all")))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", "test-model", 1)
	var out map[string]any
	if err := client.GenerateJSON(context.Background(), "s", "u", &out); err == nil {
		t.Fatal("Expected parse error")
	} else if !strings.Contains(err.Error(), "parse") {
		t.Errorf("Expected a parse error, got %v", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.input); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
