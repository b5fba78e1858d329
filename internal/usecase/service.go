package usecase

import (
	"secure-it/internal/data/repository"
	"secure-it/pkg/events"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	Site SiteService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher events.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, config, publisher, log),
		Site: NewSiteService(repo.SiteMode, log),
	}
}
