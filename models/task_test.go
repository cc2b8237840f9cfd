package models

import (
	"testing"
	"time"
)

func baseTask() Task {
	return Task{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      StatusPending,
	}
}

func TestTaskUpdate_Apply_PartialStatusOnly(t *testing.T) {
	task := baseTask()
	now := time.Now()

	TaskUpdate{Status: StatusInProgress}.Apply(&task, now)

	if task.Title != "Write report" || task.Description != "Quarterly numbers" {
		t.Errorf("status-only update changed other fields: %+v", task)
	}
	if task.Status != StatusInProgress {
		t.Errorf("expected status %q, got %q", StatusInProgress, task.Status)
	}
	if task.CompletedAt != nil {
		t.Error("in progress must not stamp completedAt")
	}
}

func TestTaskUpdate_Apply_EmptyFieldsAreNoChange(t *testing.T) {
	task := baseTask()

	// Empty strings mean "leave unchanged"; a field cannot be cleared.
	TaskUpdate{Title: "", Description: "", Status: ""}.Apply(&task, time.Now())

	if task.Title != "Write report" || task.Description != "Quarterly numbers" || task.Status != StatusPending {
		t.Errorf("empty update changed the task: %+v", task)
	}
}

func TestTaskUpdate_Apply_CompletedStampsTimestamp(t *testing.T) {
	task := baseTask()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	TaskUpdate{Status: StatusCompleted}.Apply(&task, now)

	if task.Status != StatusCompleted {
		t.Fatalf("expected status completed, got %q", task.Status)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("expected completedAt %v, got %v", now, task.CompletedAt)
	}
}

func TestTaskUpdate_Apply_LeavingCompletedKeepsTimestamp(t *testing.T) {
	task := baseTask()
	completed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	TaskUpdate{Status: StatusCompleted}.Apply(&task, completed)
	TaskUpdate{Status: StatusPending}.Apply(&task, completed.Add(time.Hour))

	if task.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", task.Status)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(completed) {
		t.Errorf("completedAt should survive leaving completed, got %v", task.CompletedAt)
	}
}

func TestTaskUpdate_Apply_AlreadyCompletedKeepsOriginalStamp(t *testing.T) {
	task := baseTask()
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	TaskUpdate{Status: StatusCompleted}.Apply(&task, first)
	TaskUpdate{Status: StatusCompleted, Title: "Write final report"}.Apply(&task, first.Add(time.Hour))

	if task.Title != "Write final report" {
		t.Errorf("expected title to update, got %q", task.Title)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(first) {
		t.Errorf("completedAt is stamped on entry only, got %v", task.CompletedAt)
	}
}

func TestTaskStatus_Valid(t *testing.T) {
	for _, status := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []TaskStatus{"done", "PENDING", "in-progress", "x"} {
		if status.Valid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}
