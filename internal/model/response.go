package model

// Response is one student's answer to one question. The composite unique
// index is what enforces one response per (question, user) pair; concurrent
// submits race on the index, not on an application-level existence check.
type Response struct {
	BaseModel
	QuestionID uint   `gorm:"not null;uniqueIndex:idx_question_user" json:"questionId"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_question_user" json:"userId"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
}

func (Response) TableName() string {
	return "responses"
}
