package domain

import "time"

type Message struct {
	MessageID   uint      `gorm:"primaryKey;column:message_id" json:"message_id"`
	SenderID    uint      `gorm:"not null;index" json:"sender_id"`
	Sender      User      `gorm:"foreignKey:SenderID;references:UserID" json:"sender"`
	ReceiverID  uint      `gorm:"not null;index" json:"receiver_id"`
	Receiver    User      `gorm:"foreignKey:ReceiverID;references:UserID" json:"receiver"`
	MessageText string    `gorm:"not null" json:"message_text"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
