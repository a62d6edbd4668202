package service

import (
	"errors"

	"github.com/Raam751/ClassPulse/internal/model"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFound("User", id)
	}
	return user, err
}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundBy("User", "email", email)
	}
	return user, err
}

func (s *UserService) GetTeachers() ([]model.User, error) {
	return s.UserRepo.FindByRole(model.Teacher)
}

func (s *UserService) GetStudents() ([]model.User, error) {
	return s.UserRepo.FindByRole(model.Student)
}

func (s *UserService) Update(id uint, name, email string, role model.UserRole) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.Role = role

	if err := s.UserRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewConflict("user already exists with email: " + email)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	rows, err := s.UserRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return util.NewNotFound("User", id)
	}
	return nil
}
