package model

// QuestionType is an open set; MCQ, TEXT and RATING get special treatment in
// analytics, anything else is accepted and aggregated as plain text.
type QuestionType string

const (
	QuestionMCQ    QuestionType = "MCQ"
	QuestionText   QuestionType = "TEXT"
	QuestionRating QuestionType = "RATING"
)

type Question struct {
	BaseModel
	SessionID   uint         `gorm:"not null;index" json:"sessionId"`
	Text        string       `gorm:"type:text;not null" json:"text"`
	Type        QuestionType `gorm:"size:20;not null" json:"type"`
	OptionsJSON string       `gorm:"type:text" json:"optionsJson,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
