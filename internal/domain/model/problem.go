package model

// DailyProblem is the normalized shape of one externally sourced practice
// problem, served as the random "daily challenge".
type DailyProblem struct {
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"`
	Link       string   `json:"link"`
	Tags       []string `json:"tags"`
}
