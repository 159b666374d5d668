package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Account status values. A user with CommentStatus != CommentStatusAllowed
// is banned from posting comments and moments.
const (
	AccountStatusActive   = 1
	AccountStatusDisabled = 0

	CommentStatusAllowed = 1
	CommentStatusBanned  = 0

	RoleTypeVisitor = 0
	RoleTypeAdmin   = 1
)

type User struct {
	gorm.Model
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number" gorm:"uniqueIndex;size:20"`
	Password      string `json:"-"` // bcrypt hash, never serialized
	IDNumber      string `json:"id_number,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Age           int    `json:"age,omitempty"`
	Description   string `json:"description,omitempty"`
	Address       string `json:"address,omitempty"`
	Wechat        string `json:"wechat,omitempty"`
	QQ            string `json:"qq,omitempty"`
	AccountStatus int    `json:"account_status" gorm:"default:1"`
	CommentStatus int    `json:"comment_status" gorm:"default:1"`
	RoleType      int    `json:"role_type" gorm:"default:0"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=5,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required,min=1,max=50"`
	IDNumber    string `json:"id_number" validate:"required"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating a user profile
type UpdateUserRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,min=5,max=20"`
	Gender      string `json:"gender,omitempty"`
	Age         int    `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Address     string `json:"address,omitempty"`
	Wechat      string `json:"wechat,omitempty"`
	QQ          string `json:"qq,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint `json:"user_id"`
	RoleType int  `json:"role_type"`
	jwt.RegisteredClaims
}
