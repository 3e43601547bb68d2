package quiz

import "jibuCashAPI/internal/task"

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Set is one category's ordered question list. Loaded when a task starts,
// discarded when the attempt ends.
type Set struct {
	ID        string        `json:"id"`
	Category  task.Category `json:"category"`
	Topic     string        `json:"topic"`
	Questions []Question    `json:"questions"`
}
