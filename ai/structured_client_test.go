package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ventureforge/internal/config"
	"ventureforge/ports"
)

func TestCleanJSONContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prefix chatter", "Here is the JSON you asked for:\n{\"a\": 1}", `{"a": 1}`},
		{"trailing chatter", "{\"a\": 1}\nHope this helps!", `{"a": 1}`},
		{"both ends", "Sure!\nHere you go:\n{\"a\": 1}\nLet me know if you need more.", `{"a": 1}`},
		{"array body", "```json\n[1, 2, 3]\n```", `[1, 2, 3]`},
		{"brace inside string", `{"text": "use } carefully"}`, `{"text": "use } carefully"}`},
		{"nested objects with trailer", "{\"a\": {\"b\": [1, 2]}}\ntrailing", `{"a": {"b": [1, 2]}}`},
		{"whitespace only trim", "  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSONContent(tc.in); got != tc.want {
				t.Fatalf("CleanJSONContent(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func testClientConfig() config.AIConfig {
	return config.AIConfig{
		OpenAIKey:   "test-key",
		OpenAIModel: "gpt-4o-mini",
		TimeoutMs:   5000,
	}
}

func completionResponse(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	out, _ := json.Marshal(resp)
	return string(out)
}

func TestGenerateJSON_ReturnsCleanedPayload(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("```json\n{\"score\": 7.5}\n```")))
	}))
	defer server.Close()

	client := NewStructuredClient(testClientConfig()).WithBaseURL(server.URL)
	raw, err := client.GenerateJSON(context.Background(), "assess this idea", "Respond with JSON.", ports.GenerationParams{Temperature: 0.2, MaxTokens: 2500})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"score": 7.5}` {
		t.Fatalf("unexpected payload %q", string(raw))
	}

	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Fatal("request must ask for JSON mode")
	}
	if gotReq.Temperature != 0.2 || gotReq.MaxCompletionTokens != 2500 {
		t.Fatalf("sampling params not forwarded: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", gotReq.Messages)
	}
}

func TestGenerateJSON_RejectsUnparseableOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(completionResponse("I can't produce that right now.")))
	}))
	defer server.Close()

	client := NewStructuredClient(testClientConfig()).WithBaseURL(server.URL)
	if _, err := client.GenerateJSON(context.Background(), "prompt", "Respond with JSON.", ports.GenerationParams{}); err == nil {
		t.Fatal("non-JSON model output must be an error")
	}
}

func TestGenerateJSON_SurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewStructuredClient(testClientConfig()).WithBaseURL(server.URL)
	if _, err := client.GenerateJSON(context.Background(), "prompt", "Respond with JSON.", ports.GenerationParams{}); err == nil {
		t.Fatal("non-200 responses must be errors")
	}
}

func TestGenerateJSON_EmptyChoicesIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewStructuredClient(testClientConfig()).WithBaseURL(server.URL)
	if _, err := client.GenerateJSON(context.Background(), "prompt", "Respond with JSON.", ports.GenerationParams{}); err == nil {
		t.Fatal("empty choices must be an error")
	}
}
