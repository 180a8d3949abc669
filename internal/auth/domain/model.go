// Package domain contains core types for the auth service.
package domain

import (
	identitydomain "github.com/classhive/classhive/internal/identity/domain"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
)

// Roles a user can hold within a school. Stored on the provider-shared
// users table and mirrored into provider session payloads.
const (
	RoleSchoolAdmin = "schoolAdmin"
	RoleMember      = "member"
	RoleTeacher     = "teacher"
	RoleStudent     = "student"
	RoleSuperAdmin  = "superAdmin"
)

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterSchoolRequest struct {
	SchoolName string
	Slug       string
	AdminName  string
	Email      string
	Password   string
}

type RegisterSchoolResult struct {
	Success bool                         `json:"success"`
	School  *schooldomain.SchoolResponse `json:"school"`
	User    *identitydomain.User         `json:"user"`
}

// User maps the columns of the provider-shared users table that this
// system touches. The identity provider owns the table and the rest of
// its columns (credential material never appears here).
type User struct {
	ID       string  `gorm:"primaryKey;type:text" json:"id"`
	Name     string  `gorm:"type:text" json:"name"`
	Email    string  `gorm:"type:text;uniqueIndex:ux_users_email" json:"email"`
	SchoolID *string `gorm:"column:school_id;type:text" json:"school_id"`
	Role     *string `gorm:"type:text" json:"role"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
