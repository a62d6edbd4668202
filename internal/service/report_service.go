package service

import (
	"sort"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
)

const (
	topTeacherLimit    = 5
	recentSessionLimit = 10
)

type TeacherStats struct {
	TeacherID      uint   `json:"teacherId"`
	TeacherName    string `json:"teacherName"`
	SessionCount   int    `json:"sessionCount"`
	TotalResponses int64  `json:"totalResponses"`
}

type SessionStats struct {
	SessionID     uint                `json:"sessionId"`
	SessionTitle  string              `json:"sessionTitle"`
	TeacherName   string              `json:"teacherName"`
	Status        model.SessionStatus `json:"status"`
	QuestionCount int64               `json:"questionCount"`
	ResponseCount int64               `json:"responseCount"`
}

type PlatformReport struct {
	TotalUsers     int64          `json:"totalUsers"`
	TotalTeachers  int64          `json:"totalTeachers"`
	TotalStudents  int64          `json:"totalStudents"`
	TotalSessions  int64          `json:"totalSessions"`
	ActiveSessions int64          `json:"activeSessions"`
	TotalQuestions int64          `json:"totalQuestions"`
	TotalResponses int64          `json:"totalResponses"`
	TopTeachers    []TeacherStats `json:"topTeachers"`
	RecentSessions []SessionStats `json:"recentSessions"`
}

// ReportService builds the cross-tenant platform report. Per-session response
// totals are batched as count queries rather than loading rows; the aggregate
// values are the same.
type ReportService struct {
	UserRepo     *repository.UserRepository
	SessionRepo  *repository.SessionRepository
	QuestionRepo *repository.QuestionRepository
	ResponseRepo *repository.ResponseRepository
}

func NewReportService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	questionRepo *repository.QuestionRepository,
	responseRepo *repository.ResponseRepository,
) *ReportService {
	return &ReportService{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		QuestionRepo: questionRepo,
		ResponseRepo: responseRepo,
	}
}

func (s *ReportService) GeneratePlatformReport() (*PlatformReport, error) {
	totalUsers, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	totalTeachers, err := s.UserRepo.CountByRole(model.Teacher)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.UserRepo.CountByRole(model.Student)
	if err != nil {
		return nil, err
	}
	totalSessions, err := s.SessionRepo.Count()
	if err != nil {
		return nil, err
	}
	activeSessions, err := s.SessionRepo.CountByStatus(model.SessionActive)
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.QuestionRepo.Count()
	if err != nil {
		return nil, err
	}
	totalResponses, err := s.ResponseRepo.Count()
	if err != nil {
		return nil, err
	}

	topTeachers, err := s.topTeachers(topTeacherLimit)
	if err != nil {
		return nil, err
	}

	recentSessions, err := s.recentSessionStats(recentSessionLimit)
	if err != nil {
		return nil, err
	}

	return &PlatformReport{
		TotalUsers:     totalUsers,
		TotalTeachers:  totalTeachers,
		TotalStudents:  totalStudents,
		TotalSessions:  totalSessions,
		ActiveSessions: activeSessions,
		TotalQuestions: totalQuestions,
		TotalResponses: totalResponses,
		TopTeachers:    topTeachers,
		RecentSessions: recentSessions,
	}, nil
}

// topTeachers ranks by session count descending. Ties keep the teachers'
// id order: the stable sort preserves the FindByRole ordering.
func (s *ReportService) topTeachers(limit int) ([]TeacherStats, error) {
	teachers, err := s.UserRepo.FindByRole(model.Teacher)
	if err != nil {
		return nil, err
	}

	stats := make([]TeacherStats, 0, len(teachers))
	for _, teacher := range teachers {
		sessions, err := s.SessionRepo.FindByTeacherID(teacher.ID)
		if err != nil {
			return nil, err
		}

		var responseTotal int64
		for _, session := range sessions {
			count, err := s.ResponseRepo.CountBySessionID(session.ID)
			if err != nil {
				return nil, err
			}
			responseTotal += count
		}

		stats = append(stats, TeacherStats{
			TeacherID:      teacher.ID,
			TeacherName:    teacher.Name,
			SessionCount:   len(sessions),
			TotalResponses: responseTotal,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].SessionCount > stats[j].SessionCount
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

func (s *ReportService) recentSessionStats(limit int) ([]SessionStats, error) {
	sessions, err := s.SessionRepo.FindRecent(limit)
	if err != nil {
		return nil, err
	}

	stats := make([]SessionStats, 0, len(sessions))
	for _, session := range sessions {
		questionCount, err := s.QuestionRepo.CountBySessionID(session.ID)
		if err != nil {
			return nil, err
		}
		responseCount, err := s.ResponseRepo.CountBySessionID(session.ID)
		if err != nil {
			return nil, err
		}

		teacherName := ""
		if session.CreatedBy != nil {
			teacherName = session.CreatedBy.Name
		}

		stats = append(stats, SessionStats{
			SessionID:     session.ID,
			SessionTitle:  session.Title,
			TeacherName:   teacherName,
			Status:        session.Status,
			QuestionCount: questionCount,
			ResponseCount: responseCount,
		})
	}
	return stats, nil
}
