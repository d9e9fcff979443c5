package extractor

import (
	"context"
	"strings"
	"testing"
	"time"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/pkg/datemath"
)

func newExtractor(t *testing.T) *RuleBased {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return New(dm)
}

// Wednesday
var testNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func TestExtractAdd(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	t.Run("Plain Title", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add buy milk", dialogue.IntentAdd, testNow)
		if ent.Title != "buy milk" {
			t.Errorf("title = %q, want %q", ent.Title, "buy milk")
		}
		if ent.Priority != "" || ent.DueDate != nil {
			t.Errorf("expected absent priority and due date, got %+v", ent)
		}
	})

	t.Run("Filler Words Stripped", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add a task to buy milk", dialogue.IntentAdd, testNow)
		if ent.Title != "buy milk" {
			t.Errorf("title = %q, want %q", ent.Title, "buy milk")
		}
	})

	t.Run("Interior Filler Kept", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add go to gym", dialogue.IntentAdd, testNow)
		if ent.Title != "go to gym" {
			t.Errorf("title = %q, want %q", ent.Title, "go to gym")
		}
	})

	t.Run("Priority Keyword", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add pay rent urgent", dialogue.IntentAdd, testNow)
		if ent.Title != "pay rent" || ent.Priority != model.PriorityHigh {
			t.Errorf("got title=%q priority=%s", ent.Title, ent.Priority)
		}
	})

	t.Run("Stranded Connective Stripped", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add pay rent tomorrow with high priority", dialogue.IntentAdd, testNow)
		if ent.Title != "pay rent" || ent.Priority != model.PriorityHigh {
			t.Errorf("got title=%q priority=%s", ent.Title, ent.Priority)
		}
	})

	t.Run("Due Date Tomorrow", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "remind me to call mom tomorrow", dialogue.IntentAdd, testNow)
		if ent.Title != "call mom" {
			t.Errorf("title = %q, want %q", ent.Title, "call mom")
		}
		want := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		if ent.DueDate == nil || !ent.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", ent.DueDate, want)
		}
	})

	t.Run("Due Date With Connective", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add finish slides by next friday high priority", dialogue.IntentAdd, testNow)
		if ent.Title != "finish slides" || ent.Priority != model.PriorityHigh {
			t.Errorf("got title=%q priority=%s", ent.Title, ent.Priority)
		}
		want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		if ent.DueDate == nil || !ent.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", ent.DueDate, want)
		}
	})

	t.Run("Bare Weekday Stays In Title", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add prepare monday agenda", dialogue.IntentAdd, testNow)
		if ent.Title != "prepare monday agenda" {
			t.Errorf("title = %q, want %q", ent.Title, "prepare monday agenda")
		}
		if ent.DueDate != nil {
			t.Errorf("due date = %v, want none without a connective", ent.DueDate)
		}
	})

	t.Run("Weekday After Connective Is A Due Date", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add submit report by friday", dialogue.IntentAdd, testNow)
		if ent.Title != "submit report" {
			t.Errorf("title = %q, want %q", ent.Title, "submit report")
		}
		want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		if ent.DueDate == nil || !ent.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", ent.DueDate, want)
		}
	})

	t.Run("No Default Priority", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add water plants", dialogue.IntentAdd, testNow)
		if ent.Priority != "" {
			t.Errorf("extractor must not default priority, got %s", ent.Priority)
		}
	})

	t.Run("Long Title Truncated With Flag", func(t *testing.T) {
		long := strings.Repeat("x ", 400) // 799 chars after trim
		ent, _ := e.Extract(ctx, "add "+long, dialogue.IntentAdd, testNow)
		if len([]rune(ent.Title)) > MaxTitleLength {
			t.Errorf("title length %d exceeds cap", len([]rune(ent.Title)))
		}
		if !ent.TitleTruncated {
			t.Error("truncation must be flagged")
		}
		if strings.TrimSpace(ent.Title) != ent.Title {
			t.Error("title has edge whitespace")
		}
	})

	t.Run("Empty After Trimming", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "add a task", dialogue.IntentAdd, testNow)
		if ent.Title != "" {
			t.Errorf("expected absent title, got %q", ent.Title)
		}
	})
}

func TestExtractList(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	t.Run("No Filters", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "show my tasks", dialogue.IntentList, testNow)
		if ent.StatusFilter != "" || ent.PriorityFilter != "" || ent.DueBefore != nil {
			t.Errorf("expected no filters, got %+v", ent)
		}
	})

	t.Run("Status Filter", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "show completed tasks", dialogue.IntentList, testNow)
		if ent.StatusFilter != task.StatusComplete {
			t.Errorf("status = %s, want COMPLETE", ent.StatusFilter)
		}
	})

	t.Run("Combined Filters AND", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "list pending high priority tasks due today", dialogue.IntentList, testNow)
		if ent.StatusFilter != task.StatusIncomplete {
			t.Errorf("status = %s, want INCOMPLETE", ent.StatusFilter)
		}
		if ent.PriorityFilter != model.PriorityHigh {
			t.Errorf("priority filter = %s, want HIGH", ent.PriorityFilter)
		}
		wantEnd := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)
		if ent.DueBefore == nil || !ent.DueBefore.Equal(wantEnd) {
			t.Errorf("due before = %v, want %v", ent.DueBefore, wantEnd)
		}
	})
}

func TestExtractTarget(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	t.Run("Delete Reference", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "delete the report task", dialogue.IntentDelete, testNow)
		if ent.TaskReference != "report" {
			t.Errorf("reference = %q, want %q", ent.TaskReference, "report")
		}
	})

	t.Run("Complete Strips Tail", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "mark groceries done", dialogue.IntentComplete, testNow)
		if ent.TaskReference != "groceries" {
			t.Errorf("reference = %q, want %q", ent.TaskReference, "groceries")
		}
	})

	t.Run("Pronoun Preserved Verbatim", func(t *testing.T) {
		for _, utterance := range []string{"mark it done", "complete that one", "finish the task"} {
			ent, _ := e.Extract(ctx, utterance, dialogue.IntentComplete, testNow)
			if !dialogue.IsPronounReference(ent.TaskReference) {
				t.Errorf("%q: reference %q is not a preserved pronoun", utterance, ent.TaskReference)
			}
		}
	})

	t.Run("Update Priority", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "change the report to high priority", dialogue.IntentUpdate, testNow)
		if ent.TaskReference != "report" || ent.Priority != model.PriorityHigh {
			t.Errorf("got reference=%q priority=%s", ent.TaskReference, ent.Priority)
		}
	})

	t.Run("Update Due Date", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "move dentist to tomorrow", dialogue.IntentUpdate, testNow)
		if ent.TaskReference != "dentist" {
			t.Errorf("reference = %q, want %q", ent.TaskReference, "dentist")
		}
		want := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		if ent.DueDate == nil || !ent.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", ent.DueDate, want)
		}
	})

	t.Run("Update Rename", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "rename groceries to weekly shopping", dialogue.IntentUpdate, testNow)
		if ent.TaskReference != "groceries" || ent.Title != "weekly shopping" {
			t.Errorf("got reference=%q title=%q", ent.TaskReference, ent.Title)
		}
	})

	t.Run("Update Multiple Fields", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "change report to urgent and due tomorrow", dialogue.IntentUpdate, testNow)
		if ent.Priority != model.PriorityHigh || ent.DueDate == nil {
			t.Errorf("expected priority and due date set, got %+v", ent)
		}
		if ent.TaskReference != "report" {
			t.Errorf("reference = %q, want %q", ent.TaskReference, "report")
		}
	})

	t.Run("Bulk Reference", func(t *testing.T) {
		ent, _ := e.Extract(ctx, "delete everything", dialogue.IntentDelete, testNow)
		if ent.TaskReference != "everything" {
			t.Errorf("reference = %q, want %q", ent.TaskReference, "everything")
		}
	})
}

func TestExtractDeterministic(t *testing.T) {
	e := newExtractor(t)
	ctx := context.Background()

	first, _ := e.Extract(ctx, "add finish slides by next friday high priority", dialogue.IntentAdd, testNow)
	for i := 0; i < 50; i++ {
		got, _ := e.Extract(ctx, "add finish slides by next friday high priority", dialogue.IntentAdd, testNow)
		if got.Title != first.Title || got.Priority != first.Priority {
			t.Fatalf("run %d: output differs: %+v vs %+v", i, got, first)
		}
	}
}
