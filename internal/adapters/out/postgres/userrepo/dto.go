// Package userrepo persists the user registry. Users are keyed by email;
// there is no surrogate identifier, so this repository does not take part
// in aggregate tracking.
package userrepo

import (
	"time"

	"zapship/internal/core/domain/model/account"
)

// UserDTO represents the database structure for user records.
type UserDTO struct {
	Email       string `gorm:"primaryKey"`
	Role        int
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// TableName specifies the database table name for user records.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		Email:       aggregate.Email(),
		Role:        int(aggregate.Role()),
		CreatedAt:   aggregate.CreatedAt(),
		LastLoginAt: aggregate.LastLoginAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	return account.RestoreUser(
		dto.Email,
		account.Role(dto.Role),
		dto.CreatedAt,
		dto.LastLoginAt,
	)
}
