package admin

import (
	"pressroom/models"
)

type AdminService interface {
	GetLegalSections() []models.LegalSection
	GetLegalSectionsFor(audience string) []models.LegalSection
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct{}
