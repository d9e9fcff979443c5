package classifier

import (
	"context"
	"errors"
	"testing"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/pkg/gemini"
)

func TestClassify(t *testing.T) {
	c := NewRuleBased()
	ctx := context.Background()

	cases := []struct {
		name      string
		utterance string
		want      dialogue.Intent
	}{
		{"Add", "add buy milk", dialogue.IntentAdd},
		{"Add Remind", "remind me to call mom tomorrow", dialogue.IntentAdd},
		{"List", "show my tasks", dialogue.IntentList},
		{"List Question", "what do I have today?", dialogue.IntentList},
		{"Complete", "mark groceries done", dialogue.IntentComplete},
		{"Complete Finish", "I finished the report", dialogue.IntentComplete},
		{"Update", "change the report task to high priority", dialogue.IntentUpdate},
		{"Update Reschedule", "reschedule dentist to friday", dialogue.IntentUpdate},
		{"Delete", "delete the groceries task", dialogue.IntentDelete},
		{"Delete Remove", "remove that one", dialogue.IntentDelete},
		{"Unknown", "how is the weather", dialogue.IntentUnknown},
		{"Empty", "   ", dialogue.IntentUnknown},
		{"No Substring Match", "I procreated a masterpiece", dialogue.IntentUnknown},
		{"Case Insensitive", "ADD Buy Milk", dialogue.IntentAdd},
		{"Punctuation", "delete, the report!", dialogue.IntentDelete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Classify(ctx, tc.utterance)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.utterance, got, tc.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewRuleBased()
	ctx := context.Background()

	first, _ := c.Classify(ctx, "add buy milk and mark groceries done")
	for i := 0; i < 50; i++ {
		got, _ := c.Classify(ctx, "add buy milk and mark groceries done")
		if got != first {
			t.Fatalf("run %d: got %s, first run gave %s", i, got, first)
		}
	}
}

// Category order decides ties: an utterance matching both ADD and DELETE
// phrases classifies as ADD.
func TestClassifyOrderWins(t *testing.T) {
	c := NewRuleBased()
	got, _ := c.Classify(context.Background(), "add remove wallpaper")
	if got != dialogue.IntentAdd {
		t.Errorf("expected ADD to win by category order, got %s", got)
	}
}

type fakeGemini struct {
	resp *gemini.GenerateResponse
	err  error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return f.resp, f.err
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestLLMBackedClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Model Answer Used", func(t *testing.T) {
		c := NewLLMBacked(&fakeGemini{resp: textResponse(`{"intent": "DELETE"}`)}, nopLogger{})
		got, _ := c.Classify(ctx, "get rid of groceries")
		if got != dialogue.IntentDelete {
			t.Errorf("expected DELETE from model, got %s", got)
		}
	})

	t.Run("Code Fences Stripped", func(t *testing.T) {
		c := NewLLMBacked(&fakeGemini{resp: textResponse("```json\n{\"intent\": \"LIST\"}\n```")}, nopLogger{})
		got, _ := c.Classify(ctx, "show tasks")
		if got != dialogue.IntentList {
			t.Errorf("expected LIST, got %s", got)
		}
	})

	t.Run("Error Falls Back To Rules", func(t *testing.T) {
		c := NewLLMBacked(&fakeGemini{err: errors.New("quota exceeded")}, nopLogger{})
		got, _ := c.Classify(ctx, "add buy milk")
		if got != dialogue.IntentAdd {
			t.Errorf("expected rule-based ADD fallback, got %s", got)
		}
	})

	t.Run("Junk Falls Back To Rules", func(t *testing.T) {
		c := NewLLMBacked(&fakeGemini{resp: textResponse("sorry, I can't")}, nopLogger{})
		got, _ := c.Classify(ctx, "delete the report")
		if got != dialogue.IntentDelete {
			t.Errorf("expected rule-based DELETE fallback, got %s", got)
		}
	})

	t.Run("Invalid Intent Falls Back", func(t *testing.T) {
		c := NewLLMBacked(&fakeGemini{resp: textResponse(`{"intent": "EXPLODE"}`)}, nopLogger{})
		got, _ := c.Classify(ctx, "list everything")
		if got != dialogue.IntentList {
			t.Errorf("expected rule-based LIST fallback, got %s", got)
		}
	})
}
