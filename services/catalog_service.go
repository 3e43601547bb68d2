package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jibuCashAPI/internal/quiz"
	"jibuCashAPI/internal/task"
)

// CatalogService owns the task catalog and the quiz bank. Both are
// read-only for users; an empty collection is seeded once with the
// default dataset and re-fetched.
type CatalogService struct {
	db *pgxpool.Pool
}

func NewCatalogService(db *pgxpool.Pool) *CatalogService {
	return &CatalogService{db: db}
}

// FetchTasks returns a category's tasks. Fails soft: backend errors are
// logged and an empty list is returned so the task list still renders.
func (s *CatalogService) FetchTasks(ctx context.Context, category task.Category) []task.Task {
	tasks, err := s.queryTasks(ctx, category)
	if err != nil {
		log.Printf("CatalogService: failed to fetch %s tasks: %v", category, err)
		return []task.Task{}
	}

	if len(tasks) == 0 {
		if err := s.seedTasks(ctx, category); err != nil {
			log.Printf("CatalogService: failed to seed %s tasks: %v", category, err)
			return []task.Task{}
		}
		tasks, err = s.queryTasks(ctx, category)
		if err != nil {
			log.Printf("CatalogService: failed to re-fetch %s tasks: %v", category, err)
			return []task.Task{}
		}
	}

	return tasks
}

// GetTask looks up a single task by its (category, id) identity.
func (s *CatalogService) GetTask(ctx context.Context, category task.Category, taskID string) (*task.Task, error) {
	var t task.Task
	query := `
		SELECT category, task_id, title, description, amount, expires_at
		FROM tasks
		WHERE category = $1 AND task_id = $2
	`
	err := s.db.QueryRow(ctx, query, category, taskID).Scan(
		&t.Category,
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Amount,
		&t.ExpiresAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// the category may simply not be seeded yet
			for _, seeded := range s.FetchTasks(ctx, category) {
				if seeded.ID == taskID {
					return &seeded, nil
				}
			}
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}

// LoadQuestions returns the question set for a category, preferring the
// set whose topic matches the task title. A category with no sets yields
// nil, which the lifecycle treats as an explicit "no questions" state.
func (s *CatalogService) LoadQuestions(ctx context.Context, category task.Category, topic string) []quiz.Question {
	sets, err := s.querySets(ctx, category)
	if err != nil {
		log.Printf("CatalogService: failed to load quiz sets for %s: %v", category, err)
		return nil
	}

	if len(sets) == 0 {
		if err := s.seedQuizSets(ctx, category); err != nil {
			log.Printf("CatalogService: failed to seed quiz sets for %s: %v", category, err)
			return nil
		}
		sets, err = s.querySets(ctx, category)
		if err != nil || len(sets) == 0 {
			return nil
		}
	}

	for _, set := range sets {
		if set.Topic == topic {
			return set.Questions
		}
	}
	return sets[0].Questions
}

func (s *CatalogService) queryTasks(ctx context.Context, category task.Category) ([]task.Task, error) {
	query := `
		SELECT category, task_id, title, description, amount, expires_at
		FROM tasks
		WHERE category = $1
		ORDER BY task_id
	`
	rows, err := s.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.Category, &t.ID, &t.Title, &t.Description, &t.Amount, &t.ExpiresAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *CatalogService) seedTasks(ctx context.Context, category task.Category) error {
	defaults := defaultTasks(category, time.Now())
	if len(defaults) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO tasks (category, task_id, title, description, amount, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (category, task_id) DO NOTHING
	`
	for _, t := range defaults {
		if _, err := tx.Exec(ctx, insert, t.Category, t.ID, t.Title, t.Description, t.Amount, t.ExpiresAt); err != nil {
			return fmt.Errorf("failed to seed task %s: %w", t.Key(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Printf("CatalogService: seeded %d default %s tasks", len(defaults), category)
	return nil
}

func (s *CatalogService) querySets(ctx context.Context, category task.Category) ([]quiz.Set, error) {
	query := `
		SELECT id, category, topic, questions
		FROM quiz_sets
		WHERE category = $1
		ORDER BY topic
	`
	rows, err := s.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []quiz.Set
	for rows.Next() {
		var set quiz.Set
		var raw []byte
		if err := rows.Scan(&set.ID, &set.Category, &set.Topic, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &set.Questions); err != nil {
			return nil, fmt.Errorf("malformed questions for quiz set %s: %w", set.ID, err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (s *CatalogService) seedQuizSets(ctx context.Context, category task.Category) error {
	defaults := defaultQuizSets(category)
	if len(defaults) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO quiz_sets (id, category, topic, questions)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, topic) DO NOTHING
	`
	for _, set := range defaults {
		questions, err := json.Marshal(set.Questions)
		if err != nil {
			return fmt.Errorf("failed to marshal questions for %q: %w", set.Topic, err)
		}
		if _, err := tx.Exec(ctx, insert, uuid.New(), set.Category, set.Topic, questions); err != nil {
			return fmt.Errorf("failed to seed quiz set %q: %w", set.Topic, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Printf("CatalogService: seeded %d default quiz sets for %s", len(defaults), category)
	return nil
}
