package service

import (
	"errors"
	"fmt"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"

	"gorm.io/gorm"
)

// ResponseService accepts one answer per (question, user) pair while the
// owning session is ACTIVE. The pair's unique index decides races between
// concurrent submits; the loser sees Conflict, never a duplicate row.
type ResponseService struct {
	ResponseRepo *repository.ResponseRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	DB           *gorm.DB
}

func NewResponseService(responseRepo *repository.ResponseRepository, questionRepo *repository.QuestionRepository, userRepo *repository.UserRepository, db *gorm.DB) *ResponseService {
	return &ResponseService{
		ResponseRepo: responseRepo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		DB:           db,
	}
}

func (s *ResponseService) GetAll() ([]model.Response, error) {
	return s.ResponseRepo.FindAll()
}

func (s *ResponseService) GetByID(id uint) (*model.Response, error) {
	response, err := s.ResponseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("Response", id)
	}
	return response, err
}

func (s *ResponseService) GetByQuestion(questionID uint) ([]model.Response, error) {
	return s.ResponseRepo.FindByQuestionID(questionID)
}

func (s *ResponseService) GetPageByQuestion(questionID uint, page, size int, sortBy, sortDir string) ([]model.Response, int64, error) {
	return s.ResponseRepo.FindPageByQuestionID(questionID, page, size, sortBy, sortDir)
}

func (s *ResponseService) GetByUser(userID uint) ([]model.Response, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("User", userID)
		}
		return nil, err
	}
	return s.ResponseRepo.FindByUserID(userID)
}

func (s *ResponseService) Submit(questionID, userID uint, answer string) (*model.Response, error) {
	var response *model.Response
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var question model.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Question", questionID)
			}
			return err
		}

		if _, err := s.findUser(tx, userID); err != nil {
			return err
		}

		session, err := s.findOwningSession(tx, &question)
		if err != nil {
			return err
		}
		if session.Status != model.SessionActive {
			return util.NewInvalidState(
				fmt.Sprintf("can only respond to questions in active sessions, session status: %s", session.Status),
				session.Status,
			)
		}

		response = &model.Response{
			QuestionID: question.ID,
			UserID:     userID,
			Answer:     answer,
		}
		if err := tx.Create(response).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return util.NewConflict("user has already responded to this question")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ResponseService) Update(id uint, answer string) (*model.Response, error) {
	var response model.Response
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&response, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Response", id)
			}
			return err
		}

		var question model.Question
		if err := tx.First(&question, response.QuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFound("Question", response.QuestionID)
			}
			return err
		}

		session, err := s.findOwningSession(tx, &question)
		if err != nil {
			return err
		}
		if session.Status != model.SessionActive {
			return util.NewInvalidState(
				fmt.Sprintf("can only update responses in active sessions, session status: %s", session.Status),
				session.Status,
			)
		}

		response.Answer = answer
		return tx.Save(&response).Error
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete is allowed regardless of session status, unlike submit and update.
func (s *ResponseService) Delete(id uint) error {
	rows, err := s.ResponseRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.NewNotFound("Response", id)
	}
	return nil
}

func (s *ResponseService) findUser(tx *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("User", userID)
		}
		return nil, err
	}
	return &user, nil
}

func (s *ResponseService) findOwningSession(tx *gorm.DB, question *model.Question) (*model.Session, error) {
	var session model.Session
	if err := tx.First(&session, question.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound("Session", question.SessionID)
		}
		return nil, err
	}
	return &session, nil
}
