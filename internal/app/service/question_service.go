package service

import (
	"context"
	"fmt"
	"time"

	"preptrack/internal/common"
	"preptrack/internal/domain/model"
	"preptrack/internal/domain/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
	now          func() time.Time
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		now:          time.Now,
	}
}

// QuestionRequest is the write payload for both create and full replace.
type QuestionRequest struct {
	Title      string                   `json:"title"`
	Topic      model.QuestionTopic      `json:"topic"`
	Difficulty model.QuestionDifficulty `json:"difficulty"`
	Platform   model.QuestionPlatform   `json:"platform"`
	Notes      string                   `json:"notes"`
	SolvedDate *time.Time               `json:"solved_date,omitempty"`
}

func (req *QuestionRequest) validate() error {
	var fields []common.FieldError
	if req.Title == "" {
		fields = append(fields, common.FieldError{Field: "title", Message: "title is required"})
	} else if len(req.Title) > model.MaxTitleLen {
		fields = append(fields, common.FieldError{Field: "title", Message: fmt.Sprintf("title cannot be more than %d characters", model.MaxTitleLen)})
	}
	if !req.Topic.IsValid() {
		fields = append(fields, common.FieldError{Field: "topic", Message: "invalid topic"})
	}
	if !req.Difficulty.IsValid() {
		fields = append(fields, common.FieldError{Field: "difficulty", Message: "difficulty must be Easy, Medium, or Hard"})
	}
	if !req.Platform.IsValid() {
		fields = append(fields, common.FieldError{Field: "platform", Message: "platform must be LeetCode, GFG, Codeforces, or Other"})
	}
	if len(req.Notes) > model.MaxNotesLen {
		fields = append(fields, common.FieldError{Field: "notes", Message: fmt.Sprintf("notes cannot be more than %d characters", model.MaxNotesLen)})
	}
	if len(fields) > 0 {
		return &common.ValidationError{Fields: fields}
	}
	return nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, ownerID string) ([]model.Question, error) {
	questions, err := s.questionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, ownerID string, req QuestionRequest) (*model.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	solvedDate := s.now()
	if req.SolvedDate != nil {
		solvedDate = *req.SolvedDate
	}

	question := &model.Question{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      req.Title,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Platform:   req.Platform,
		Notes:      req.Notes,
		SolvedDate: solvedDate,
		CreatedAt:  s.now(),
		UpdatedAt:  s.now(),
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, common.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// UpdateQuestion replaces every editable field of an owned record.
// Not-found and owner-mismatch are reported distinctly; a record deleted
// between the ownership check and the write surfaces as not found
// (last-write-wins, no version check).
func (s *QuestionService) UpdateQuestion(ctx context.Context, ownerID, id string, req QuestionRequest) (*model.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	existing, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, common.Errorf("not authorized to update this question: %w", common.ErrForbidden)
	}

	solvedDate := existing.SolvedDate
	if req.SolvedDate != nil {
		solvedDate = *req.SolvedDate
	}

	updated := &model.Question{
		ID:         existing.ID,
		OwnerID:    existing.OwnerID,
		Title:      req.Title,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Platform:   req.Platform,
		Notes:      req.Notes,
		SolvedDate: solvedDate,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  s.now(),
	}

	if err := s.questionRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, ownerID, id string) error {
	existing, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return common.Errorf("not authorized to delete this question: %w", common.ErrForbidden)
	}
	return s.questionRepo.Delete(ctx, id)
}
