package services

import (
	"context"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// SettingsService exposes the store's key-value configuration as typed
// site settings. Parsing and defaults live at this boundary so handlers
// never touch raw config entries.
type SettingsService struct {
	api *api.Client
}

// NewSettingsService creates a new settings service
func NewSettingsService(apiClient *api.Client) *SettingsService {
	return &SettingsService{api: apiClient}
}

// SiteSettings fetches and parses the current site settings
func (s *SettingsService) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	entries, err := s.api.SiteConfig(ctx)
	if err != nil {
		return nil, err
	}
	return models.SettingsFromEntries(entries), nil
}
