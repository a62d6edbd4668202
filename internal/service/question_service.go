package service

import (
	"errors"
	"fmt"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	SessionRepo  *repository.SessionRepository
	DB           *gorm.DB
}

func NewQuestionService(questionRepo *repository.QuestionRepository, sessionRepo *repository.SessionRepository, db *gorm.DB) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		DB:           db,
	}
}

func (s *QuestionService) GetAll() ([]model.Question, error) {
	return s.QuestionRepo.FindAll()
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("Question", id)
	}
	return question, err
}

func (s *QuestionService) GetBySession(sessionID uint) ([]model.Question, error) {
	return s.QuestionRepo.FindBySessionID(sessionID)
}

func (s *QuestionService) Create(sessionID uint, text string, questionType model.QuestionType, optionsJSON string) (*model.Question, error) {
	var question *model.Question
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var session model.Session
		if err := tx.First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Session", sessionID)
			}
			return err
		}

		if session.Status == model.SessionEnded {
			return util.NewInvalidState("cannot add questions to an ended session", session.Status)
		}

		question = &model.Question{
			SessionID:   session.ID,
			Text:        text,
			Type:        questionType,
			OptionsJSON: optionsJSON,
		}
		return tx.Create(question).Error
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// Update re-derives the owning session's status from storage at decision
// time: questions of an ENDED session are immutable, same as on create.
func (s *QuestionService) Update(id uint, text string, questionType model.QuestionType, optionsJSON string) (*model.Question, error) {
	var question model.Question
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Question", id)
			}
			return err
		}

		var session model.Session
		if err := tx.First(&session, question.SessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Session", question.SessionID)
			}
			return err
		}

		if session.Status == model.SessionEnded {
			return util.NewInvalidState(
				fmt.Sprintf("cannot modify questions of an ended session, current status: %s", session.Status),
				session.Status,
			)
		}

		question.Text = text
		question.Type = questionType
		question.OptionsJSON = optionsJSON
		return tx.Save(&question).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) Delete(id uint) error {
	rows, err := s.QuestionRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.NewNotFound("Question", id)
	}
	return nil
}
