package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"
	"github.com/Raam751/ClassPulse/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionAnalytics struct {
	QuestionID         uint               `json:"questionId"`
	QuestionText       string             `json:"questionText"`
	QuestionType       model.QuestionType `json:"questionType"`
	ResponseCount      int                `json:"responseCount"`
	AnswerDistribution map[string]int     `json:"answerDistribution"`
	// AverageRating is only present for RATING questions.
	AverageRating *float64 `json:"averageRating,omitempty"`
}

type SessionAnalytics struct {
	SessionID                   uint                `json:"sessionId"`
	SessionTitle                string              `json:"sessionTitle"`
	SessionStatus               model.SessionStatus `json:"sessionStatus"`
	TotalQuestions              int                 `json:"totalQuestions"`
	TotalResponses              int                 `json:"totalResponses"`
	UniqueParticipants          int                 `json:"uniqueParticipants"`
	AverageResponsesPerQuestion float64             `json:"averageResponsesPerQuestion"`
	QuestionAnalytics           []QuestionAnalytics `json:"questionAnalytics"`
}

type TeacherDashboard struct {
	TeacherID                  uint    `json:"teacherId"`
	TeacherName                string  `json:"teacherName"`
	TotalSessions              int     `json:"totalSessions"`
	ActiveSessions             int     `json:"activeSessions"`
	EndedSessions              int     `json:"endedSessions"`
	TotalQuestions             int     `json:"totalQuestions"`
	TotalResponses             int     `json:"totalResponses"`
	TotalUniqueStudents        int     `json:"totalUniqueStudents"`
	AverageResponsesPerSession float64 `json:"averageResponsesPerSession"`
	AverageQuestionsPerSession float64 `json:"averageQuestionsPerSession"`
}

// AnalyticsService is read-only aggregation over the session/question/response
// graph. Session analytics go through a short-TTL Redis read-through cache; a
// nil client disables caching entirely.
type AnalyticsService struct {
	SessionRepo  *repository.SessionRepository
	QuestionRepo *repository.QuestionRepository
	ResponseRepo *repository.ResponseRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewAnalyticsService(
	sessionRepo *repository.SessionRepository,
	questionRepo *repository.QuestionRepository,
	responseRepo *repository.ResponseRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *AnalyticsService {
	return &AnalyticsService{
		SessionRepo:  sessionRepo,
		QuestionRepo: questionRepo,
		ResponseRepo: responseRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
		CacheTTL:     cacheTTL,
	}
}

func (s *AnalyticsService) GetSessionAnalytics(sessionID uint) (*SessionAnalytics, error) {
	cacheKey := fmt.Sprintf("analytics:session:%d", sessionID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(context.Background(), cacheKey).Result(); err == nil {
			var analytics SessionAnalytics
			if err := json.Unmarshal([]byte(cached), &analytics); err == nil {
				return &analytics, nil
			}
		}
	}

	analytics, err := s.computeSessionAnalytics(sessionID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(analytics); err == nil {
			if err := s.Redis.Set(context.Background(), cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("analytics cache write failed", zap.Uint("sessionId", sessionID), zap.Error(err))
			}
		}
	}

	return analytics, nil
}

func (s *AnalyticsService) computeSessionAnalytics(sessionID uint) (*SessionAnalytics, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Session", sessionID)
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}

	totalResponses := 0
	uniqueUsers := make(map[uint]struct{})
	questionAnalytics := make([]QuestionAnalytics, 0, len(questions))

	for _, question := range questions {
		responses, err := s.ResponseRepo.FindByQuestionID(question.ID)
		if err != nil {
			return nil, err
		}

		totalResponses += len(responses)
		for _, response := range responses {
			uniqueUsers[response.UserID] = struct{}{}
		}

		questionAnalytics = append(questionAnalytics, buildQuestionAnalytics(&question, responses))
	}

	avgResponsesPerQuestion := 0.0
	if len(questions) > 0 {
		avgResponsesPerQuestion = float64(totalResponses) / float64(len(questions))
	}

	return &SessionAnalytics{
		SessionID:                   session.ID,
		SessionTitle:                session.Title,
		SessionStatus:               session.Status,
		TotalQuestions:              len(questions),
		TotalResponses:              totalResponses,
		UniqueParticipants:          len(uniqueUsers),
		AverageResponsesPerQuestion: round2(avgResponsesPerQuestion),
		QuestionAnalytics:           questionAnalytics,
	}, nil
}

func (s *AnalyticsService) GetTeacherDashboard(teacherID uint) (*TeacherDashboard, error) {
	teacher, err := s.UserRepo.FindByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Teacher", teacherID)
		}
		return nil, err
	}

	sessions, err := s.SessionRepo.FindByTeacherID(teacherID)
	if err != nil {
		return nil, err
	}

	activeSessions := 0
	endedSessions := 0
	totalQuestions := 0
	totalResponses := 0
	uniqueStudents := make(map[uint]struct{})

	for _, session := range sessions {
		switch session.Status {
		case model.SessionActive:
			activeSessions++
		case model.SessionEnded:
			endedSessions++
		}

		questions, err := s.QuestionRepo.FindBySessionID(session.ID)
		if err != nil {
			return nil, err
		}
		totalQuestions += len(questions)

		for _, question := range questions {
			responses, err := s.ResponseRepo.FindByQuestionID(question.ID)
			if err != nil {
				return nil, err
			}
			totalResponses += len(responses)
			for _, response := range responses {
				uniqueStudents[response.UserID] = struct{}{}
			}
		}
	}

	avgResponsesPerSession := 0.0
	avgQuestionsPerSession := 0.0
	if len(sessions) > 0 {
		avgResponsesPerSession = float64(totalResponses) / float64(len(sessions))
		avgQuestionsPerSession = float64(totalQuestions) / float64(len(sessions))
	}

	return &TeacherDashboard{
		TeacherID:                  teacher.ID,
		TeacherName:                teacher.Name,
		TotalSessions:              len(sessions),
		ActiveSessions:             activeSessions,
		EndedSessions:              endedSessions,
		TotalQuestions:             totalQuestions,
		TotalResponses:             totalResponses,
		TotalUniqueStudents:        len(uniqueStudents),
		AverageResponsesPerSession: round2(avgResponsesPerSession),
		AverageQuestionsPerSession: round2(avgQuestionsPerSession),
	}, nil
}

func buildQuestionAnalytics(question *model.Question, responses []model.Response) QuestionAnalytics {
	distribution := make(map[string]int)
	for _, response := range responses {
		distribution[response.Answer]++
	}

	qa := QuestionAnalytics{
		QuestionID:         question.ID,
		QuestionText:       question.Text,
		QuestionType:       question.Type,
		ResponseCount:      len(responses),
		AnswerDistribution: distribution,
	}

	if question.Type == model.QuestionRating {
		// Unparseable answers count as 0 but stay in the denominator.
		sum := 0.0
		for _, response := range responses {
			if v, err := strconv.ParseFloat(response.Answer, 64); err == nil {
				sum += v
			}
		}
		avg := 0.0
		if len(responses) > 0 {
			avg = sum / float64(len(responses))
		}
		avg = round2(avg)
		qa.AverageRating = &avg
	}

	return qa
}

// round2 rounds to 2 decimal places; applied to published figures only,
// never to intermediate accumulators.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
