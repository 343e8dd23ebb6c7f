package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.CreateUser) (userID string, err error)
	ListUsers(ctx context.Context) ([]models.User, error)
	PromoteToAdmin(ctx context.Context, userID string) error
	CheckAdmin(ctx context.Context, email string) (*responses.AdminStatus, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertRoleByID(ctx context.Context, userID, role string) error
}
