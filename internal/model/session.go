package model

type SessionStatus string

const (
	SessionCreated SessionStatus = "CREATED"
	SessionActive  SessionStatus = "ACTIVE"
	SessionEnded   SessionStatus = "ENDED"
)

// Session is a timed polling round owned by a teacher. Students join it by
// its 6-digit code. Status only moves forward: CREATED -> ACTIVE -> ENDED.
type Session struct {
	BaseModel
	Title       string        `gorm:"size:200;not null" json:"title"`
	Code        string        `gorm:"size:6;uniqueIndex;not null" json:"code"`
	Status      SessionStatus `gorm:"size:20;not null;default:'CREATED'" json:"status"`
	CreatedByID uint          `gorm:"not null;index" json:"createdById"`
	CreatedBy   *User         `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}
