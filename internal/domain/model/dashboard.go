package model

// FieldCount is one bucket of a grouped count, e.g. {"Arrays", 12}.
type FieldCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DateCount is the number of questions solved on one calendar day.
type DateCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DashboardSummary is the derived per-user dashboard payload. It is never
// persisted; every request recomputes it from the question store.
type DashboardSummary struct {
	TotalQuestions        int          `json:"total_questions"`
	QuestionsByTopic      []FieldCount `json:"questions_by_topic"`
	QuestionsByDifficulty []FieldCount `json:"questions_by_difficulty"`
	RecentQuestions       []Question   `json:"recent_questions"`
	QuestionsByDate       []DateCount  `json:"questions_by_date"`
	Streak                int          `json:"streak"`
}
