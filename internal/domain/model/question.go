package model

import (
	"time"
)

type QuestionTopic string
type QuestionDifficulty string
type QuestionPlatform string

const (
	TopicArrays  QuestionTopic = "Arrays"
	TopicStrings QuestionTopic = "Strings"
	TopicTrees   QuestionTopic = "Trees"
	TopicGraphs  QuestionTopic = "Graphs"
	TopicDP      QuestionTopic = "DP"
	TopicDBMS    QuestionTopic = "DBMS"
	TopicOS      QuestionTopic = "OS"
	TopicCN      QuestionTopic = "CN"

	DifficultyEasy   QuestionDifficulty = "Easy"
	DifficultyMedium QuestionDifficulty = "Medium"
	DifficultyHard   QuestionDifficulty = "Hard"

	PlatformLeetCode   QuestionPlatform = "LeetCode"
	PlatformGFG        QuestionPlatform = "GFG"
	PlatformCodeforces QuestionPlatform = "Codeforces"
	PlatformOther      QuestionPlatform = "Other"
)

const (
	MaxTitleLen = 200
	MaxNotesLen = 1000
)

// Question is a single solved practice problem, scoped to the user who
// logged it. Only the owner may read, replace or delete it.
type Question struct {
	ID         string             `json:"id"`
	OwnerID    string             `json:"owner_id"`
	Title      string             `json:"title"`
	Topic      QuestionTopic      `json:"topic"`
	Difficulty QuestionDifficulty `json:"difficulty"`
	Platform   QuestionPlatform   `json:"platform"`
	Notes      string             `json:"notes,omitempty"`
	SolvedDate time.Time          `json:"solved_date"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (t QuestionTopic) IsValid() bool {
	switch t {
	case TopicArrays, TopicStrings, TopicTrees, TopicGraphs, TopicDP, TopicDBMS, TopicOS, TopicCN:
		return true
	}
	return false
}

func (d QuestionDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (p QuestionPlatform) IsValid() bool {
	switch p {
	case PlatformLeetCode, PlatformGFG, PlatformCodeforces, PlatformOther:
		return true
	}
	return false
}
