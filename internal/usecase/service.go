package usecase

import (
	"user-portal/internal/data/repository"
	"user-portal/pkg/mailer"
	"user-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, config, mail, log),
		User: NewUserService(repo, log),
	}
}
