package services

import (
	"testing"

	"jibuCashAPI/internal/quiz"
	"jibuCashAPI/internal/task"
)

func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, quiz.Question{
			Question:      "Q",
			Options:       []string{"right", "wrong", "also wrong"},
			CorrectAnswer: "right",
		})
	}
	return qs
}

func testTask() task.Task {
	return task.Task{ID: "1", Category: task.CategoryInitial, Title: "Monetizing Social Media", Amount: 3}
}

func TestAttemptCompletesAfterExactlyNCorrectAnswers(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(4))

	if _, err := m.Begin(av.ID, "user-1"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	correctSubmissions := 0
	for i := 0; i < 4; i++ {
		// a few wrong attempts first; the cursor must not move
		for j := 0; j < 3; j++ {
			res, err := m.Answer(av.ID, "user-1", "wrong")
			if err != nil {
				t.Fatalf("Answer failed: %v", err)
			}
			if res.Correct {
				t.Fatal("wrong answer reported as correct")
			}
			if res.Attempt.CurrentIndex != i {
				t.Fatalf("wrong answer moved cursor: got %d, want %d", res.Attempt.CurrentIndex, i)
			}
		}

		res, err := m.Answer(av.ID, "user-1", "right")
		if err != nil {
			t.Fatalf("Answer failed: %v", err)
		}
		if !res.Correct {
			t.Fatal("correct answer reported as wrong")
		}
		correctSubmissions++

		if i < 3 && res.Completed {
			t.Fatalf("attempt completed early at question %d", i)
		}
	}

	if correctSubmissions != 4 {
		t.Fatalf("needed %d correct submissions, want 4", correctSubmissions)
	}

	final, err := m.Get(av.ID, "user-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if final.State != AttemptCompleted {
		t.Fatalf("state = %q, want %q", final.State, AttemptCompleted)
	}
}

func TestAnswerWithoutSelectionIsBlocked(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(1))
	if _, err := m.Begin(av.ID, "user-1"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	if _, err := m.Answer(av.ID, "user-1", ""); err != ErrNoAnswerSelected {
		t.Fatalf("err = %v, want ErrNoAnswerSelected", err)
	}

	// the attempt must still be answerable
	res, err := m.Answer(av.ID, "user-1", "right")
	if err != nil || !res.Correct {
		t.Fatalf("attempt unusable after blocked answer: res=%v err=%v", res, err)
	}
}

func TestEmptyQuestionSetCompletesAtBegin(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), nil)

	if !av.NoQuestions {
		t.Fatal("NoQuestions not flagged")
	}
	if av.State != AttemptStarted {
		t.Fatalf("state = %q, want %q", av.State, AttemptStarted)
	}

	begun, err := m.Begin(av.ID, "user-1")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if begun.State != AttemptCompleted {
		t.Fatalf("state = %q, want %q", begun.State, AttemptCompleted)
	}
}

func TestAnswerBeforeBeginIsRejected(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(1))

	if _, err := m.Answer(av.ID, "user-1", "right"); err == nil {
		t.Fatal("expected error answering before Begin")
	}
}

func TestAttemptIsScopedToItsUser(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(1))

	if _, err := m.Begin(av.ID, "someone-else"); err != ErrAttemptNotFound {
		t.Fatalf("err = %v, want ErrAttemptNotFound", err)
	}
}

func TestStartingSameTaskResumesAttempt(t *testing.T) {
	m := NewAttemptManager()
	first := m.Create("user-1", testTask(), testQuestions(2))
	second := m.Create("user-1", testTask(), testQuestions(2))

	if first.ID != second.ID {
		t.Fatalf("expected the same attempt, got %s and %s", first.ID, second.ID)
	}
}

func TestQuestionViewHidesCorrectAnswer(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(1))
	begun, err := m.Begin(av.ID, "user-1")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	if begun.Question == nil {
		t.Fatal("no question presented")
	}
	if len(begun.Question.Options) != 3 {
		t.Fatalf("options = %d, want 3", len(begun.Question.Options))
	}
}

func TestClaimRequiresCompletedState(t *testing.T) {
	m := NewAttemptManager()
	av := m.Create("user-1", testTask(), testQuestions(2))
	if _, err := m.Begin(av.ID, "user-1"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	snap, err := m.Snapshot(av.ID, "user-1")
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.State == AttemptCompleted {
		t.Fatal("attempt completed without answers")
	}
}
