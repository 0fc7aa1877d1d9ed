package models

// User represents a registered customer. The username is the primary key;
// records are never updated or deleted once created.
type User struct {
	Username  string `json:"username" gorm:"primaryKey;type:varchar(100)"`
	Email     string `json:"email" gorm:"type:varchar(255)"`
	Password  string `gorm:"type:varchar(255)"` // No json tag for security
	CreatedAt string `json:"created_at" gorm:"type:varchar(64)"`
}
