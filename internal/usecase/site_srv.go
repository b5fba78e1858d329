package usecase

import (
	"context"
	"strings"

	"secure-it/internal/data/entity"
	"secure-it/internal/data/repository"
	"secure-it/internal/dto/request"
	"secure-it/internal/dto/response"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

const msgSiteModeUnavailable = "Site mode is unavailable right now."

type SiteService interface {
	GetMode(ctx context.Context) (*response.SiteModeResponse, error)
	SetMode(ctx context.Context, req *request.SetSiteModeRequest) (*response.SiteModeResponse, error)
	ToggleMode(ctx context.Context) (*response.SiteModeResponse, error)
	// Contact renders the contact page for mode, or for the current mode when
	// mode is empty.
	Contact(ctx context.Context, mode string) (*response.ContactResponse, error)
}

type siteService struct {
	siteModeRepo repository.SiteModeRepository
	log          *zap.Logger
}

func NewSiteService(siteModeRepo repository.SiteModeRepository, log *zap.Logger) SiteService {
	return &siteService{
		siteModeRepo: siteModeRepo,
		log:          log,
	}
}

func (ss *siteService) GetMode(ctx context.Context) (*response.SiteModeResponse, error) {
	mode, err := ss.siteModeRepo.Get(ctx)
	if err != nil {
		ss.log.Error("Failed to read site mode", zap.Error(err))
		return nil, newError(KindInfrastructure, msgSiteModeUnavailable, err)
	}

	resp := response.SiteModeToResponse(mode)
	return &resp, nil
}

func (ss *siteService) SetMode(ctx context.Context, req *request.SetSiteModeRequest) (*response.SiteModeResponse, error) {
	req.Mode = strings.ToLower(strings.TrimSpace(req.Mode))
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ss.log.Warn("Set site mode validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	mode := entity.ParseSiteMode(req.Mode)
	if err := ss.siteModeRepo.Set(ctx, mode); err != nil {
		ss.log.Error("Failed to store site mode", zap.Error(err), zap.String("mode", string(mode)))
		return nil, newError(KindInfrastructure, msgSiteModeUnavailable, err)
	}

	ss.log.Info("Site mode changed", zap.String("mode", string(mode)))

	resp := response.SiteModeToResponse(mode)
	return &resp, nil
}

func (ss *siteService) ToggleMode(ctx context.Context) (*response.SiteModeResponse, error) {
	current, err := ss.siteModeRepo.Get(ctx)
	if err != nil {
		ss.log.Error("Failed to read site mode", zap.Error(err))
		return nil, newError(KindInfrastructure, msgSiteModeUnavailable, err)
	}

	next := current.Toggle()
	if err := ss.siteModeRepo.Set(ctx, next); err != nil {
		ss.log.Error("Failed to store site mode", zap.Error(err), zap.String("mode", string(next)))
		return nil, newError(KindInfrastructure, msgSiteModeUnavailable, err)
	}

	ss.log.Info("Site mode toggled",
		zap.String("from", string(current)),
		zap.String("to", string(next)))

	resp := response.SiteModeToResponse(next)
	return &resp, nil
}

func (ss *siteService) Contact(ctx context.Context, mode string) (*response.ContactResponse, error) {
	var siteMode entity.SiteMode
	if strings.TrimSpace(mode) != "" {
		siteMode = entity.ParseSiteMode(mode)
	} else {
		current, err := ss.siteModeRepo.Get(ctx)
		if err != nil {
			ss.log.Error("Failed to read site mode", zap.Error(err))
			return nil, newError(KindInfrastructure, msgSiteModeUnavailable, err)
		}
		siteMode = current
	}

	content := ecommerceContact
	if !siteMode.EcommerceEnabled() {
		content = basicContact
	}

	return &response.ContactResponse{
		OK:               true,
		Mode:             siteMode,
		EcommerceEnabled: siteMode.EcommerceEnabled(),
		Heading:          content.heading,
		Intro:            content.intro,
		Notice:           content.notice,
		ShowPackages:     siteMode.EcommerceEnabled(),
		Form:             content.form,
		Details:          contactDetails,
		Organization:     organization,
	}, nil
}
