package models

import (
	"strings"
	"time"
)

// User is an account on this server. HiddenTags is a comma-joined list of
// tag names the user must never see; any group whose aggregate tags touch
// that list is invisible to them.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_username" json:"username"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"is_admin"`
	HiddenTags string    `gorm:"type:text;not null;default:''" json:"hidden_tags"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// HiddenTagList splits HiddenTags into trimmed, non-empty tag names.
func (u *User) HiddenTagList() []string {
	if u.HiddenTags == "" {
		return nil
	}
	parts := strings.Split(u.HiddenTags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
