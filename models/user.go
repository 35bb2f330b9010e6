package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             int       `gorm:"primary_key" json:"id"`
	Username       string    `gorm:"size:100;not null;unique" json:"username"`
	Email          string    `gorm:"size:255" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	Role           UserRole  `gorm:"size:1;default:O" json:"role"`
	OrganizationID string    `gorm:"size:36;index" json:"organization_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair is the auth response body. The access token is a short-lived JWT,
// the refresh token an opaque value tracked in redis so it can be revoked.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

var ErrInvalidCredentials = errors.New("invalid username or password")

func refreshKey(token string) string { return "Refresh:" + token }
func refreshSetKey(username string) string { return "Refreshes:" + username }

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {

	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return nil, utils.NewValidationError("email", "Invalid email address")
	}

	role := UserRole(input.Role)
	if role == "" {
		role = UserRoleOwner
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:       input.Username,
		Email:          input.Email,
		Password:       string(hashed),
		Role:           role,
		OrganizationID: input.OrganizationID,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		config.LogError(config.GetLogger(), "user.go", "CreateUser", "Create", user.Username, err)
		return nil, err
	}
	return &user, nil
}

// LinkUserOrganization records the organization a user is registering so the
// wizard can be resumed from another session.
func LinkUserOrganization(ctx context.Context, userId int, organizationId string) error {
	db := config.GetDB()
	err := db.WithContext(ctx).Model(&User{}).Where("id = ?", userId).Update("OrganizationID", organizationId).Error
	if err != nil {
		config.LogError(config.GetLogger(), "user.go", "LinkUserOrganization", "Update", userId, err)
	}
	return err
}

func GetUserByUsername(ctx context.Context, username string) (*User, error) {
	db := config.GetDB()
	var user User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func issueTokenPair(user *User) (*TokenPair, error) {

	accessToken, err := utils.JwtGenerate(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := config.SetRedisValue(refreshKey(refreshToken), user.Username, utils.RefreshTokenLifespan()); err != nil {
		config.LogError(config.GetLogger(), "user.go", "issueTokenPair", "SetRedisValue", user.Username, err)
		return nil, err
	}
	if err := config.AddRedisSet(refreshSetKey(user.Username), refreshToken); err != nil {
		config.LogError(config.GetLogger(), "user.go", "issueTokenPair", "AddRedisSet", user.Username, err)
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func Login(ctx context.Context, input *LoginInput) (*TokenPair, error) {

	user, err := GetUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePassword(user.Password, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return issueTokenPair(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued, so a replayed token fails.
func Refresh(ctx context.Context, input *RefreshInput) (*TokenPair, error) {

	username, found, err := config.GetRedisValue(refreshKey(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("refresh token is invalid or expired")
	}

	if err := config.RemoveRedisKey(refreshKey(input.RefreshToken)); err != nil {
		return nil, err
	}
	if err := config.RemoveRedisSetMember(refreshSetKey(username), input.RefreshToken); err != nil {
		return nil, err
	}

	user, err := GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return issueTokenPair(user)
}

// Logout revokes every outstanding refresh token for the user.
func Logout(ctx context.Context, username string) error {

	tokens, err := config.GetRedisSetMembers(refreshSetKey(username))
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, refreshKey(token))
	}
	keys = append(keys, refreshSetKey(username))

	return config.RemoveRedisKey(keys...)
}
