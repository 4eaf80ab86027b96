package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "explicit news ask", text: "any news on the election?", want: News},
		{name: "headlines", text: "show me today's headlines", want: News},
		{name: "ticker topic", text: "Tesla earnings today", want: News},
		{name: "bare topic name", text: "Nvidia", want: News},
		{name: "sports team", text: "how did the Cowboys do", want: News},
		{name: "league", text: "NBA scores", want: News},
		{name: "general fact", text: "What is the capital of France?", want: General},
		{name: "general math", text: "explain compound interest", want: General},
		{name: "mixed case", text: "LATEST on the Fed", want: News},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Classify("breaking: market update"); got != News {
			t.Fatalf("run %d: Classify changed answer: %q", i, got)
		}
	}
}

func TestIsSports(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "Cowboys injury report", want: true},
		{text: "premier league table", want: true},
		{text: "nhl playoffs", want: true},
		{text: "Tesla earnings today", want: false},
		{text: "What is the capital of France?", want: false},
	}

	for _, tt := range tests {
		if got := IsSports(tt.text); got != tt.want {
			t.Errorf("IsSports(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
