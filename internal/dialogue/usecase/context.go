package usecase

import "conversational-task-management/internal/model"

func (t *turn) findTask(id string) *model.Task {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			cp := t.tasks[i]
			return &cp
		}
	}
	return nil
}

func (t *turn) replaceTask(updated model.Task) {
	for i := range t.tasks {
		if t.tasks[i].ID == updated.ID {
			t.tasks[i] = updated
			return
		}
	}
	t.tasks = append(t.tasks, updated)
}

// removeTask drops a deleted task from the working set and scrubs it from
// the mention context so a later pronoun cannot point at a dead task.
func (t *turn) removeTask(id string) {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
			break
		}
	}
	if t.cctx.LastMentionedTaskID == id {
		t.cctx.LastMentionedTaskID = ""
	}
	for i, mid := range t.cctx.LastMentionedTaskIDs {
		if mid == id {
			t.cctx.LastMentionedTaskIDs = append(t.cctx.LastMentionedTaskIDs[:i], t.cctx.LastMentionedTaskIDs[i+1:]...)
			break
		}
	}
}
