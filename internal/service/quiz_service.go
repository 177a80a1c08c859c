package service

import (
	"context"

	"readdash-service/internal/authoring"
	"readdash-service/internal/models"
	"readdash-service/internal/repository"
)

type QuizService struct {
	Repo *repository.QuizRepository
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

func (s *QuizService) ListQuizzes(ctx context.Context, readingLevel, category string) ([]models.Quiz, error) {
	quizzes, err := s.Repo.FindAll(ctx, readingLevel, category)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		authoring.RestoreTables(&quizzes[i])
	}
	return quizzes, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	authoring.RestoreTables(quiz)
	return quiz, nil
}

// CreateQuiz validates and persists a new authoring document. The returned
// warnings are non-fatal authoring notices for the admin.
func (s *QuizService) CreateQuiz(ctx context.Context, meta authoring.QuizMeta, components []models.Component) (*models.Quiz, []string, error) {
	quiz, warnings, err := authoring.BuildQuizDocument(meta, components)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, nil, err
	}
	return quiz, warnings, nil
}

// UpdateQuiz rebuilds the document from the submitted components and
// overwrites the stored quiz wholesale. Components and questions are always
// replaced together; only the original creation stamp survives.
func (s *QuizService) UpdateQuiz(ctx context.Context, id string, meta authoring.QuizMeta, components []models.Component) (*models.Quiz, []string, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	quiz, warnings, err := authoring.BuildQuizDocument(meta, components)
	if err != nil {
		return nil, nil, err
	}
	quiz.CreatedAt = existing.CreatedAt
	if quiz.CreatedBy == "" {
		quiz.CreatedBy = existing.CreatedBy
	}
	if err := s.Repo.Replace(ctx, id, quiz); err != nil {
		return nil, nil, err
	}
	return quiz, warnings, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
