package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(30);not null"`
	IsActive     bool     `gorm:"default:true"`
}
