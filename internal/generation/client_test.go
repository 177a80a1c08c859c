package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const quizJSON = `{"title":"France","passage":"Paris is the capital.","questions":[{"type":"multiple-choice","prompt":"Capital?","options":["Paris","Lyon"],"correctOption":0}]}`

func TestParseQuizJSON(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"plain json", quizJSON, false},
		{"json fence", "```json\n" + quizJSON + "\n```", false},
		{"bare fence", "```\n" + quizJSON + "\n```", false},
		{"not json", "Sure! Here is your quiz.", true},
		{"missing passage", `{"title":"x","questions":[{"prompt":"y"}]}`, true},
		{"missing questions", `{"title":"x","passage":"y"}`, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz, err := ParseQuizJSON(tc.content)
			if tc.wantErr {
				if err == nil {
					t.Error("Expected parse error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuizJSON failed: %v", err)
			}
			if quiz.Title != "France" || len(quiz.Questions) != 1 {
				t.Errorf("Unexpected quiz: %+v", quiz)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer auth, got %q", got)
		}
		content, err := json.Marshal(quizJSON)
		if err != nil {
			t.Errorf("marshal content: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":` + string(content) + `}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model")
	quiz, err := client.Generate(context.Background(), GenerateRequest{Topic: "France", ReadingLevel: "B1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if quiz.Title != "France" || quiz.Passage == "" {
		t.Errorf("Unexpected quiz: %+v", quiz)
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model")
	if _, err := client.Generate(context.Background(), GenerateRequest{Topic: "x", ReadingLevel: "A1"}); err == nil {
		t.Error("Expected error from failing backend")
	}
}
