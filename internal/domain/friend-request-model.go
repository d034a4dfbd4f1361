package domain

import "time"

type FriendStatus string

const (
	FriendPending  FriendStatus = "Pending"
	FriendAccepted FriendStatus = "Accepted"
	FriendRejected FriendStatus = "Rejected"
)

type FriendRequest struct {
	RequestID  uint         `gorm:"primaryKey;column:request_id" json:"request_id"`
	SenderID   uint         `gorm:"not null;index" json:"sender_id"`
	Sender     User         `gorm:"foreignKey:SenderID;references:UserID" json:"sender"`
	ReceiverID uint         `gorm:"not null;index" json:"receiver_id"`
	Receiver   User         `gorm:"foreignKey:ReceiverID;references:UserID" json:"receiver"`
	Status     FriendStatus `gorm:"type:varchar(10);not null;default:Pending" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}
