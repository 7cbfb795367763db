package service

import (
	"github.com/carson-networks/roi-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	ROI *ROIService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		ROI: NewROIService(store),
	}
}
