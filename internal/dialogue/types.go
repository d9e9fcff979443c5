package dialogue

import (
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
)

// Intent is the category of task operation a user utterance requests.
type Intent string

const (
	IntentAdd      Intent = "ADD"
	IntentList     Intent = "LIST"
	IntentComplete Intent = "COMPLETE"
	IntentUpdate   Intent = "UPDATE"
	IntentDelete   Intent = "DELETE"
	IntentUnknown  Intent = "UNKNOWN"
)

// Valid reports whether the intent is one of the known categories.
func (i Intent) Valid() bool {
	switch i {
	case IntentAdd, IntentList, IntentComplete, IntentUpdate, IntentDelete, IntentUnknown:
		return true
	}
	return false
}

// ExtractedEntities is the structured payload extracted from one utterance
// fragment. Empty/nil fields mean "absent" — defaulting (e.g. MEDIUM
// priority) is the task service's concern, never this layer's.
type ExtractedEntities struct {
	Title          string            `json:"title,omitempty"`
	TitleTruncated bool              `json:"title_truncated,omitempty"`
	Priority       model.Priority    `json:"priority,omitempty"`
	DueDate        *time.Time        `json:"due_date,omitempty"`
	StatusFilter   task.StatusFilter `json:"status_filter,omitempty"`
	PriorityFilter model.Priority    `json:"priority_filter,omitempty"`
	DueBefore      *time.Time        `json:"due_before,omitempty"`
	TaskReference  string            `json:"task_reference,omitempty"`
}

// Fragment is one sub-utterance within a compound request, carrying exactly
// one intent.
type Fragment struct {
	Intent Intent `json:"intent"`
	Text   string `json:"text"`
}

// PendingOperation is an operation awaiting explicit user confirmation.
// Remaining holds the raw text of compound-request fragments suspended
// behind this confirmation; they are re-planned once the user replies.
type PendingOperation struct {
	Kind      Intent            `json:"kind"`
	TargetIDs []string          `json:"target_ids,omitempty"`
	Payload   ExtractedEntities `json:"payload"`
	Remaining []string          `json:"remaining,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Disambiguation holds the candidate task ids a reference matched, together
// with the operation to run once the user picks one.
type Disambiguation struct {
	Candidates []string         `json:"candidates"`
	Op         PendingOperation `json:"op"`
}

// ConversationContext is the only state that survives between turns. It is
// owned by the caller, passed in by value and returned updated; the engine
// holds nothing behind it.
//
// Invariant: at most one of PendingOperation or Disambiguation is set.
type ConversationContext struct {
	LastMentionedTaskID  string            `json:"last_mentioned_task_id,omitempty"`
	LastMentionedTaskIDs []string          `json:"last_mentioned_task_ids,omitempty"`
	PendingOperation     *PendingOperation `json:"pending_operation,omitempty"`
	Disambiguation       *Disambiguation   `json:"disambiguation,omitempty"`
}

// InvocationStatus is the lifecycle state of one tool invocation.
type InvocationStatus string

const (
	StatusPending InvocationStatus = "PENDING"
	StatusSuccess InvocationStatus = "SUCCESS"
	StatusFailed  InvocationStatus = "FAILED"
)

// Tool names dispatched to the task CRUD service.
const (
	ToolCreateTask   = "create_task"
	ToolListTasks    = "list_tasks"
	ToolCompleteTask = "complete_task"
	ToolUpdateTask   = "update_task"
	ToolDeleteTask   = "delete_task"
)

// ErrorKind classifies failures surfaced to the caller.
type ErrorKind string

const (
	ErrKindNone                 ErrorKind = ""
	ErrKindUnrecognized         ErrorKind = "UNRECOGNIZED"
	ErrKindAmbiguousReference   ErrorKind = "AMBIGUOUS_REFERENCE"
	ErrKindReferenceNotFound    ErrorKind = "REFERENCE_NOT_FOUND"
	ErrKindMissingRequiredField ErrorKind = "MISSING_REQUIRED_FIELD"
	ErrKindToolNotFound         ErrorKind = "TOOL_NOT_FOUND"
	ErrKindToolTransient        ErrorKind = "TOOL_TRANSIENT"
	ErrKindToolPermanent        ErrorKind = "TOOL_PERMANENT"
)

// ToolInvocation is one concrete call into the task CRUD service.
type ToolInvocation struct {
	ToolName   string           `json:"tool_name"`
	Parameters map[string]any   `json:"parameters"`
	Status     InvocationStatus `json:"status"`
	Error      ErrorKind        `json:"error,omitempty"`
}

// DirectiveKind tells the caller what to present; the wording is theirs.
type DirectiveKind string

const (
	DirectiveConfirm        DirectiveKind = "CONFIRM"
	DirectiveDisambiguate   DirectiveKind = "DISAMBIGUATE"
	DirectiveResult         DirectiveKind = "RESULT"
	DirectiveClarify        DirectiveKind = "CLARIFY"
	DirectiveTitleTruncated DirectiveKind = "TITLE_TRUNCATED"
)

// Candidate is one disambiguation choice shown to the user.
type Candidate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ResponseDirective describes one thing the caller should present.
type ResponseDirective struct {
	Kind       DirectiveKind     `json:"kind"`
	Operation  *PendingOperation `json:"operation,omitempty"`
	Candidates []Candidate       `json:"candidates,omitempty"`
	Task       *model.Task       `json:"task,omitempty"`
	Tasks      []model.Task      `json:"tasks,omitempty"`
	Error      ErrorKind         `json:"error,omitempty"`
	Detail     string            `json:"detail,omitempty"`
}

// HandleInput is one turn's input.
type HandleInput struct {
	Message string              `json:"message"`
	Context ConversationContext `json:"context"`
	// Tasks is the caller's current task set. When nil the engine fetches
	// it from the task service.
	Tasks []model.Task `json:"tasks,omitempty"`
	// Now anchors relative date resolution; zero means time.Now().
	Now time.Time `json:"now,omitempty"`
}

// HandleOutput is one turn's result: invocations executed this turn, the
// updated context for the caller to persist, and presentation directives.
type HandleOutput struct {
	Invocations []ToolInvocation    `json:"invocations"`
	Context     ConversationContext `json:"context"`
	Directives  []ResponseDirective `json:"directives"`
}
