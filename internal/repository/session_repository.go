package repository

import (
	"time"

	"github.com/Raam751/ClassPulse/internal/model"

	"gorm.io/gorm"
)

// sessionSortColumns is the allowlist for caller-supplied sort fields.
var sessionSortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"code":      "code",
	"status":    "status",
	"createdAt": "created_at",
}

// SessionFilter combines optional criteria with AND semantics; zero values
// mean the criterion is skipped.
type SessionFilter struct {
	Status    model.SessionStatus
	TeacherID uint
	StartDate time.Time
	EndDate   time.Time
}

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.Session, error) {
	var session model.Session
	err := r.DB.Preload("CreatedBy").First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) FindByCode(code string) (*model.Session, error) {
	var session model.Session
	err := r.DB.Preload("CreatedBy").Where("code = ?", code).First(&session).Error
	return &session, err
}

func (r *SessionRepository) FindByTeacherID(teacherID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Where("created_by_id = ?", teacherID).Order("id").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByStatus(status model.SessionStatus) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Where("status = ?", status).Order("id").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindPage(page, size int, sortBy, sortDir string) ([]model.Session, int64, error) {
	return r.findPage(r.DB.Model(&model.Session{}), page, size, sortBy, sortDir)
}

func (r *SessionRepository) FindWithFilters(filter SessionFilter, page, size int, sortBy, sortDir string) ([]model.Session, int64, error) {
	query := r.DB.Model(&model.Session{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TeacherID != 0 {
		query = query.Where("created_by_id = ?", filter.TeacherID)
	}
	if !filter.StartDate.IsZero() {
		query = query.Where("created_at >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("created_at <= ?", filter.EndDate)
	}

	return r.findPage(query, page, size, sortBy, sortDir)
}

func (r *SessionRepository) findPage(query *gorm.DB, page, size int, sortBy, sortDir string) ([]model.Session, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sessionSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " DESC"
	if sortDir == "asc" {
		order = column + " ASC"
	}

	var sessions []model.Session
	err := query.Preload("CreatedBy").
		Order(order).
		Offset((page - 1) * size).
		Limit(size).
		Find(&sessions).Error
	return sessions, total, err
}

func (r *SessionRepository) FindRecent(limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Preload("CreatedBy").Order("created_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Session{}, id)
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Session{}).Count(&count).Error
	return count, err
}

func (r *SessionRepository) CountByStatus(status model.SessionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Session{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
