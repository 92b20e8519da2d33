package repository

import "time"

// Notification is a stored status message for a tracked transaction.
type Notification struct {
	ID              uint      `gorm:"primaryKey"`
	TransactionHash string    `gorm:"size:66;index;not null"` // 0x + 64 hex chars
	MethodName      string    `gorm:"size:64;not null"`
	EventCode       string    `gorm:"size:16;not null"`
	Message         string    `gorm:"type:text;not null"`
	Network         string    `gorm:"size:16;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Operator is an account seeded into an empty user table.
type Operator struct {
	Username string
	Password string
}
