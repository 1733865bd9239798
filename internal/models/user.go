package models

import "time"

const (
	RoleClient = "client"
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

// Artists go through an admin review before they show up in search
// and can take bookings. Clients are approved on registration.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	City     string `gorm:"size:100" json:"city"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	ApprovalStatus  string     `gorm:"size:20;default:'approved'" json:"approval_status"`
	RejectionReason string     `gorm:"size:255" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
