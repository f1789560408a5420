package models

import (
	"github.com/ainotes/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
	}
}

// UserModelFromDomain converts a domain entity to the persistence model
func UserModelFromDomain(user *identity.User) *UserModel {
	model := &UserModel{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	model.FromDomainAggregateRoot(user.BaseAggregateRoot)
	return model
}
