package service

import (
	"context"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves info to the version screen. Build info made with
// [models.NewAppBuildInfo] always has a version ("N/A" when not injected);
// a zero value is rejected.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: info,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	logger.FromContext(ctx).Debug().Str("func", "appInfoService.GetBuildInfo").Msg("build info requested")
	return s.buildInfo
}
