package repository

import (
	"github.com/Raam751/ClassPulse/internal/model"

	"gorm.io/gorm"
)

var responseSortColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
}

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	err := r.DB.First(&response, id).Error
	return &response, err
}

func (r *ResponseRepository) FindAll() ([]model.Response, error) {
	var responses []model.Response
	err := r.DB.Order("id").Find(&responses).Error
	return responses, err
}

func (r *ResponseRepository) FindByQuestionID(questionID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.DB.Where("question_id = ?", questionID).Order("id").Find(&responses).Error
	return responses, err
}

func (r *ResponseRepository) FindPageByQuestionID(questionID uint, page, size int, sortBy, sortDir string) ([]model.Response, int64, error) {
	query := r.DB.Model(&model.Response{}).Where("question_id = ?", questionID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := responseSortColumns[sortBy]
	if !ok {
		column = "id"
	}
	order := column + " DESC"
	if sortDir == "asc" {
		order = column + " ASC"
	}

	var responses []model.Response
	err := query.Order(order).Offset((page - 1) * size).Limit(size).Find(&responses).Error
	return responses, total, err
}

func (r *ResponseRepository) FindByUserID(userID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&responses).Error
	return responses, err
}

// Delete removes the row for real: a soft-deleted response would keep
// holding the (question_id, user_id) unique slot and block resubmission.
func (r *ResponseRepository) Delete(id uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&model.Response{}, id)
	return res.RowsAffected, res.Error
}

func (r *ResponseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).Count(&count).Error
	return count, err
}

func (r *ResponseRepository) CountByQuestionID(questionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *ResponseRepository) CountBySessionID(sessionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).
		Joins("JOIN questions ON questions.id = responses.question_id").
		Where("questions.session_id = ? AND questions.deleted_at IS NULL", sessionID).
		Count(&count).Error
	return count, err
}
