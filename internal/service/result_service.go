package service

import (
	"context"
	"errors"
	"time"

	"readdash-service/internal/grading"
	"readdash-service/internal/models"
	"readdash-service/internal/repository"
)

// ErrResultNotOwned is returned when a user asks for a review of a result
// that belongs to someone else. Handlers surface it as not found.
var ErrResultNotOwned = errors.New("result does not belong to this user")

// Points awarded per correct answer, plus a bonus for a perfect score.
const (
	PointsPerCorrect  = 10
	PerfectScoreBonus = 25
)

// Store interfaces over the repositories, narrowed to what the submission
// flow touches. The mongo repositories satisfy them; tests substitute
// in-memory fakes.
type resultStore interface {
	Create(ctx context.Context, result *models.Result) error
	FindByID(ctx context.Context, id string) (*models.Result, error)
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
	FindByUserAndQuiz(ctx context.Context, userID, quizID string) ([]models.Result, error)
	FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error)
	DeleteByUserAndQuiz(ctx context.Context, userID, quizID string) (int64, error)
}

type quizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

type userStore interface {
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	AddProgress(ctx context.Context, uid string, points int) (*models.User, error)
}

type achievementStore interface {
	Create(ctx context.Context, a *models.Achievement) error
	Exists(ctx context.Context, userID, kind string) (bool, error)
}

type ResultService struct {
	Results      resultStore
	Quizzes      quizStore
	Users        userStore
	Achievements achievementStore
	GradeOpts    grading.Options
}

func NewResultService(
	results *repository.ResultRepository,
	quizzes *repository.QuizRepository,
	users *repository.UserRepository,
	achievements *repository.AchievementRepository,
	gradeOpts grading.Options,
) *ResultService {
	return &ResultService{
		Results:      results,
		Quizzes:      quizzes,
		Users:        users,
		Achievements: achievements,
		GradeOpts:    gradeOpts,
	}
}

// SubmitQuiz grades a submission, appends the result, and applies its
// progress effects. The identity tuple is upserted before anything else is
// written, so a first-time submitter gets a profile document even if they
// never opened the profile page. Concurrent submissions by the same user are
// independent appends; nothing here coordinates them.
func (s *ResultService) SubmitQuiz(ctx context.Context, user models.User, quizID string, answers map[string]string, timeSpentSeconds int) (*models.Result, []models.Achievement, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}
	summary, err := grading.Grade(quiz, answers, s.GradeOpts)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Users.Upsert(ctx, &user); err != nil {
		return nil, nil, err
	}

	points := summary.CorrectCount * PointsPerCorrect
	if summary.Score == 100 {
		points += PerfectScoreBonus
	}
	result := &models.Result{
		UserID:           user.UID,
		QuizID:           quizID,
		Score:            summary.Score,
		CorrectCount:     summary.CorrectCount,
		TotalQuestions:   summary.TotalQuestions,
		TimeSpentSeconds: timeSpentSeconds,
		QuestionResults:  summary.PerQuestion,
		PointsEarned:     points,
		CompletedAt:      time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, nil, err
	}

	earned, err := s.applyProgress(ctx, user.UID, result)
	if err != nil {
		return nil, nil, err
	}
	return result, earned, nil
}

func (s *ResultService) applyProgress(ctx context.Context, userID string, result *models.Result) ([]models.Achievement, error) {
	before, err := s.Users.FindByUID(ctx, userID)
	if err != nil {
		return nil, err
	}
	after, err := s.Users.AddProgress(ctx, userID, result.PointsEarned)
	if err != nil {
		return nil, err
	}

	var earned []models.Achievement
	award := func(kind, title string, once bool) error {
		if once {
			exists, err := s.Achievements.Exists(ctx, userID, kind)
			if err != nil || exists {
				return err
			}
		}
		a := &models.Achievement{UserID: userID, Kind: kind, Title: title, EarnedAt: time.Now().UTC()}
		if err := s.Achievements.Create(ctx, a); err != nil {
			return err
		}
		earned = append(earned, *a)
		return nil
	}

	if after.QuizzesCompleted == 1 {
		if err := award(models.AchievementFirstQuiz, "First quiz completed", true); err != nil {
			return nil, err
		}
	}
	if result.Score == 100 {
		if err := award(models.AchievementPerfectScore, "Perfect score", true); err != nil {
			return nil, err
		}
	}
	if after.QuizzesCompleted >= 10 {
		if err := award(models.AchievementTenQuizzes, "Ten quizzes completed", true); err != nil {
			return nil, err
		}
	}
	if after.Level > before.Level {
		if err := award(models.AchievementLevelUp, "Level up", false); err != nil {
			return nil, err
		}
	}
	return earned, nil
}

func (s *ResultService) ResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	return s.Results.FindByUser(ctx, userID)
}

// ResultsByQuiz lists every attempt on a quiz across all users, for the
// admin per-quiz view.
func (s *ResultService) ResultsByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	return s.Results.FindByQuiz(ctx, quizID)
}

// BestAttempt returns the user's highest-scoring attempt for a quiz, or nil
// if they have none. Ties fall to whichever attempt the store returned first.
func (s *ResultService) BestAttempt(ctx context.Context, userID, quizID string) (*models.Result, error) {
	results, err := s.Results.FindByUserAndQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return grading.BestAttempt(results), nil
}

// BestResultsByUser collapses a user's attempts to one best attempt per quiz.
func (s *ResultService) BestResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	all, err := s.Results.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byQuiz := make(map[string][]models.Result)
	var quizOrder []string
	for _, r := range all {
		if _, seen := byQuiz[r.QuizID]; !seen {
			quizOrder = append(quizOrder, r.QuizID)
		}
		byQuiz[r.QuizID] = append(byQuiz[r.QuizID], r)
	}
	best := make([]models.Result, 0, len(quizOrder))
	for _, quizID := range quizOrder {
		if b := grading.BestAttempt(byQuiz[quizID]); b != nil {
			best = append(best, *b)
		}
	}
	return best, nil
}

// ResetQuiz deletes every attempt the user has for the quiz and reports how
// many were removed.
func (s *ResultService) ResetQuiz(ctx context.Context, userID, quizID string) (int64, error) {
	return s.Results.DeleteByUserAndQuiz(ctx, userID, quizID)
}

// Review builds the side-by-side answer review for one of the user's
// results against the quiz as it exists now.
func (s *ResultService) Review(ctx context.Context, userID, quizID, resultID string) ([]grading.ReviewEntry, error) {
	result, err := s.Results.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.UserID != userID || result.QuizID != quizID {
		return nil, ErrResultNotOwned
	}
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return grading.BuildReview(quiz, result), nil
}
