package model

import "time"

// User login account (table users)
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(150);not null"                     json:"name"`
	Email        string     `gorm:"type:varchar(100);not null;uniqueIndex"         json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	MobileNo     string     `gorm:"type:varchar(15)"                               json:"mobileNo,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null"                      json:"role"`
	IsActive     bool       `gorm:"not null"                                       json:"isActive"`
	LastLoginAt  *time.Time `                                                      json:"lastLoginAt,omitempty"`
	BaseModel
}

// TableName table name
func (User) TableName() string { return "users" }
