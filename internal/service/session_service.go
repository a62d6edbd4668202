package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"
	"github.com/Raam751/ClassPulse/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionService owns the session lifecycle: CREATED -> ACTIVE -> ENDED,
// never backward, never skipping. All transitions re-read the row inside a
// transaction so the decision is made against committed state.
type SessionService struct {
	SessionRepo *repository.SessionRepository
	UserRepo    *repository.UserRepository
	Email       *EmailService
	DB          *gorm.DB
}

func NewSessionService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, email *EmailService, db *gorm.DB) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Email:       email,
		DB:          db,
	}
}

func (s *SessionService) GetAll(page, size int, sortBy, sortDir string) ([]model.Session, int64, error) {
	return s.SessionRepo.FindPage(page, size, sortBy, sortDir)
}

func (s *SessionService) GetByID(id uint) (*model.Session, error) {
	session, err := s.SessionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("Session", id)
	}
	return session, err
}

// GetByCode is the public join path; students hit it before they have an
// account, so it must stay reachable without authentication.
func (s *SessionService) GetByCode(code string) (*model.Session, error) {
	session, err := s.SessionRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundBy("Session", "code", code)
	}
	return session, err
}

func (s *SessionService) GetByTeacher(teacherID uint) ([]model.Session, error) {
	if _, err := s.UserRepo.FindByID(teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Teacher", teacherID)
		}
		return nil, err
	}
	return s.SessionRepo.FindByTeacherID(teacherID)
}

func (s *SessionService) GetActive() ([]model.Session, error) {
	return s.SessionRepo.FindByStatus(model.SessionActive)
}

func (s *SessionService) Filter(filter repository.SessionFilter, page, size int, sortBy, sortDir string) ([]model.Session, int64, error) {
	return s.SessionRepo.FindWithFilters(filter, page, size, sortBy, sortDir)
}

// Create makes a new CREATED session with a fresh 6-digit join code. The
// code's unique index is the arbiter: on a duplicate-key error the code is
// resampled and the insert retried, so two concurrent creates can never both
// claim the same code.
func (s *SessionService) Create(title string, teacherID uint) (*model.Session, error) {
	teacher, err := s.UserRepo.FindByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Teacher", teacherID)
		}
		return nil, err
	}

	var session *model.Session
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for {
			candidate := &model.Session{
				Title:       title,
				Code:        generateJoinCode(),
				Status:      model.SessionCreated,
				CreatedByID: teacher.ID,
			}
			if err := tx.Create(candidate).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return err
			}
			session = candidate
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	session.CreatedBy = teacher
	return session, nil
}

func (s *SessionService) Start(id uint) (*model.Session, error) {
	return s.transition(id, model.SessionCreated, model.SessionActive,
		"session can only be started from CREATED status")
}

// End is a one-way gate: after it commits no more questions or responses can
// be created or edited for this session. The summary email is fire-and-forget
// and can never roll the transition back.
func (s *SessionService) End(id uint) (*model.Session, error) {
	session, err := s.transition(id, model.SessionActive, model.SessionEnded,
		"session can only be ended from ACTIVE status")
	if err != nil {
		return nil, err
	}

	if s.Email != nil {
		go func(sessionID uint) {
			if err := s.Email.SendSessionSummary(sessionID); err != nil {
				logger.Log.Warn("session summary email failed", zap.Uint("sessionId", sessionID), zap.Error(err))
			}
		}(session.ID)
	}

	return session, nil
}

func (s *SessionService) transition(id uint, from, to model.SessionStatus, reason string) (*model.Session, error) {
	var session model.Session
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Session", id)
			}
			return err
		}

		if session.Status != from {
			return util.NewInvalidState(
				fmt.Sprintf("%s, current status: %s", reason, session.Status),
				session.Status,
			)
		}

		session.Status = to
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) Delete(id uint) error {
	rows, err := s.SessionRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.NewNotFound("Session", id)
	}
	return nil
}

// generateJoinCode samples the 10^6 space of zero-padded 6-digit codes.
// Uniqueness is not checked here; the caller relies on the unique index.
func generateJoinCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
