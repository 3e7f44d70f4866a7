package usecase

import (
	"strings"
	"testing"
)

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantErr  bool
		want     string
	}{
		{"valid", "How does chunking work?", false, "How does chunking work?"},
		{"trimmed", "  spaced out  ", false, "spaced out"},
		{"empty", "", true, ""},
		{"whitespace only", "   ", true, ""},
		{"too long", strings.Repeat("a", 1001), true, ""},
		{"at limit", strings.Repeat("a", 1000), false, strings.Repeat("a", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateQuestion(tt.question)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("clean question = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateDocumentIDs(t *testing.T) {
	if err := ValidateDocumentIDs(nil); err != nil {
		t.Errorf("nil filter: %v", err)
	}
	if err := ValidateDocumentIDs([]string{"d1", "d2"}); err != nil {
		t.Errorf("valid filter: %v", err)
	}
	if err := ValidateDocumentIDs([]string{}); err == nil {
		t.Error("empty filter accepted")
	}
	if err := ValidateDocumentIDs([]string{"d1", " "}); err == nil {
		t.Error("blank id accepted")
	}
}
