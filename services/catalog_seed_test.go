package services

import (
	"testing"
	"time"

	"jibuCashAPI/internal/task"
)

func TestDefaultTasksCoverEveryCategory(t *testing.T) {
	now := time.Now()

	for _, cat := range task.AllCategories {
		tasks := defaultTasks(cat, now)
		if len(tasks) == 0 {
			t.Fatalf("category %q has no seed tasks", cat)
		}

		ids := make(map[string]bool)
		for _, tk := range tasks {
			if tk.Category != cat {
				t.Errorf("task %s seeded under wrong category %q", tk.ID, tk.Category)
			}
			if ids[tk.ID] {
				t.Errorf("duplicate task id %q in category %q", tk.ID, cat)
			}
			ids[tk.ID] = true
			if tk.Amount <= 0 {
				t.Errorf("task %s has non-positive amount %v", tk.Key(), tk.Amount)
			}
		}
	}
}

func TestInitialTasksAreTimeBoxed(t *testing.T) {
	now := time.Now()
	tasks := defaultTasks(task.CategoryInitial, now)

	if len(tasks) != 3 {
		t.Fatalf("initial tasks = %d, want 3", len(tasks))
	}
	for _, tk := range tasks {
		if tk.ExpiresAt == nil {
			t.Errorf("initial task %s has no expiry", tk.ID)
			continue
		}
		if got := tk.ExpiresAt.Sub(now); got != 24*time.Hour {
			t.Errorf("initial task %s expires in %v, want 24h", tk.ID, got)
		}
	}

	for _, cat := range task.AllCategories {
		if cat == task.CategoryInitial {
			continue
		}
		for _, tk := range defaultTasks(cat, now) {
			if tk.ExpiresAt != nil {
				t.Errorf("task %s should not carry an expiry", tk.Key())
			}
		}
	}
}

func TestDefaultQuizSetsMatchInitialTasks(t *testing.T) {
	now := time.Now()
	sets := defaultQuizSets(task.CategoryInitial)
	if len(sets) != 3 {
		t.Fatalf("initial quiz sets = %d, want 3", len(sets))
	}

	titles := make(map[string]bool)
	for _, tk := range defaultTasks(task.CategoryInitial, now) {
		titles[tk.Title] = true
	}

	for _, set := range sets {
		if !titles[set.Topic] {
			t.Errorf("quiz set topic %q matches no initial task title", set.Topic)
		}
		if len(set.Questions) != 8 {
			t.Errorf("set %q has %d questions, want 8", set.Topic, len(set.Questions))
		}
		for i, q := range set.Questions {
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("set %q question %d: correct answer not among options", set.Topic, i)
			}
		}
	}

	for _, cat := range task.AllCategories {
		if cat == task.CategoryInitial {
			continue
		}
		if got := defaultQuizSets(cat); got != nil {
			t.Errorf("category %q should ship without quiz sets", cat)
		}
	}
}
