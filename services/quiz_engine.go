package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"jibuCashAPI/internal/quiz"
	"jibuCashAPI/internal/task"
)

// Attempt states. Available/Locked/AlreadyClaimedToday never materialize
// as attempts: they are decided at start time from session state.
type AttemptState string

const (
	AttemptStarted   AttemptState = "started"
	AttemptInQuiz    AttemptState = "inQuiz"
	AttemptCompleted AttemptState = "completed"
	AttemptClaimed   AttemptState = "claimed"
)

// Attempt is one user's in-flight run at a task: the loaded question set
// and the cursor into it. It lives only in memory and is discarded when
// the quiz closes; claims persist through SessionService.
type Attempt struct {
	ID          string
	UserID      string
	Task        task.Task
	Questions   []quiz.Question
	Index       int
	State       AttemptState
	NoQuestions bool
	StartedAt   time.Time
}

// QuestionView is a question as presented to the client. The correct
// answer stays server-side.
type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type AttemptView struct {
	ID             string        `json:"id"`
	Task           task.Task     `json:"task"`
	State          AttemptState  `json:"state"`
	CurrentIndex   int           `json:"currentIndex"`
	TotalQuestions int           `json:"totalQuestions"`
	NoQuestions    bool          `json:"noQuestions"`
	Question       *QuestionView `json:"question,omitempty"`
}

type AnswerResult struct {
	Correct   bool         `json:"correct"`
	Completed bool         `json:"completed"`
	Attempt   *AttemptView `json:"attempt"`
}

func (a *Attempt) view() *AttemptView {
	v := &AttemptView{
		ID:             a.ID,
		Task:           a.Task,
		State:          a.State,
		CurrentIndex:   a.Index,
		TotalQuestions: len(a.Questions),
		NoQuestions:    a.NoQuestions,
	}
	if a.State == AttemptInQuiz && a.Index < len(a.Questions) {
		q := a.Questions[a.Index]
		v.Question = &QuestionView{Question: q.Question, Options: q.Options}
	}
	return v
}

// AttemptManager holds every in-flight attempt. One user gets one attempt
// per task; starting the same task again resumes the existing attempt.
type AttemptManager struct {
	mu       sync.RWMutex
	attempts map[string]*Attempt
	maxAge   time.Duration
}

func NewAttemptManager() *AttemptManager {
	return &AttemptManager{
		attempts: make(map[string]*Attempt),
		maxAge:   2 * time.Hour,
	}
}

// Create registers a new attempt in the Started state.
func (m *AttemptManager) Create(userID string, t task.Task, questions []quiz.Question) *AttemptView {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.attempts {
		if a.UserID == userID && a.Task.Key() == t.Key() && a.State != AttemptClaimed {
			return a.view()
		}
	}

	a := &Attempt{
		ID:          uuid.New().String(),
		UserID:      userID,
		Task:        t,
		Questions:   questions,
		State:       AttemptStarted,
		NoQuestions: len(questions) == 0,
		StartedAt:   time.Now(),
	}
	m.attempts[a.ID] = a
	return a.view()
}

// Begin moves Started -> InQuiz at question zero. With an empty question
// set the quiz step is a no-op and the attempt completes immediately.
func (m *AttemptManager) Begin(attemptID, userID string) (*AttemptView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := m.get(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.State != AttemptStarted {
		return nil, fmt.Errorf("cannot begin quiz from state %q", a.State)
	}

	a.Index = 0
	if a.NoQuestions {
		a.State = AttemptCompleted
	} else {
		a.State = AttemptInQuiz
	}
	return a.view(), nil
}

// Answer evaluates one selection against the current question. A correct
// answer advances the cursor (completing the attempt after the last
// question); a wrong one stays put so the user can retry without limit.
func (m *AttemptManager) Answer(attemptID, userID, selected string) (*AnswerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, err := m.get(attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.State != AttemptInQuiz {
		return nil, fmt.Errorf("cannot answer from state %q", a.State)
	}
	if selected == "" {
		return nil, ErrNoAnswerSelected
	}

	correct := selected == a.Questions[a.Index].CorrectAnswer
	if correct {
		a.Index++
		if a.Index >= len(a.Questions) {
			a.State = AttemptCompleted
		}
	}

	return &AnswerResult{
		Correct:   correct,
		Completed: a.State == AttemptCompleted,
		Attempt:   a.view(),
	}, nil
}

// Get returns the attempt view if it belongs to the user.
func (m *AttemptManager) Get(attemptID, userID string) (*AttemptView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, err := m.get(attemptID, userID)
	if err != nil {
		return nil, err
	}
	return a.view(), nil
}

// Snapshot returns the raw attempt for the claim path.
func (m *AttemptManager) Snapshot(attemptID, userID string) (*Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, err := m.get(attemptID, userID)
	if err != nil {
		return nil, err
	}
	copied := *a
	return &copied, nil
}

// MarkClaimed finalizes and drops a claimed attempt.
func (m *AttemptManager) MarkClaimed(attemptID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, attemptID)
}

// Discard removes an attempt whose claim was rejected; the task card
// falls back to whatever the session state says it is.
func (m *AttemptManager) Discard(attemptID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, attemptID)
}

func (m *AttemptManager) get(attemptID, userID string) (*Attempt, error) {
	a, ok := m.attempts[attemptID]
	if !ok || a.UserID != userID {
		return nil, ErrAttemptNotFound
	}
	return a, nil
}

// CleanupStale drops abandoned attempts. Run as a goroutine from main.
func (m *AttemptManager) CleanupStale() {
	for {
		time.Sleep(10 * time.Minute)
		m.mu.Lock()
		for id, a := range m.attempts {
			if time.Since(a.StartedAt) > m.maxAge {
				delete(m.attempts, id)
			}
		}
		m.mu.Unlock()
	}
}
