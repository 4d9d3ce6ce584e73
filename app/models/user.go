package models

// Role values stored in the users table.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account of the mobile application. The password digest is
// stored but never serialised.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nom          string `gorm:"size:255;not null" json:"nom"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:64;not null" json:"-"`
	Adresse      string `gorm:"size:255" json:"adresse"`
	Role         string `gorm:"size:50;default:user" json:"role"`
	AIAllowed    bool   `gorm:"column:ai_allowed;default:false" json:"ai_allowed"`
}

// TableName pins the gorm table name.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the account has the administrator role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanUseAI reports whether the account may trigger an AI diagnosis.
// Administrators always can, regular users need the explicit flag.
func (u *User) CanUseAI() bool { return u.IsAdmin() || u.AIAllowed }
