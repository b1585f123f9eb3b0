package usecase

import (
	"context"

	"seatech/internal/domain/entity"
)

// ProductRequirement is one category/quantity line of a dealer application.
type ProductRequirement struct {
	Category string
	Quantity int
}

// SubmitApplicationInput carries a dealer/OEM authorization form.
type SubmitApplicationInput struct {
	Type           entity.ApplicationType
	DealerName     string
	DirectorName   string
	Address        string
	Email          string
	Mobile         string
	DirectorEmail  string
	DirectorMobile string
	GSTNumber      string
	Requirements   []ProductRequirement

	// Turnover figures, required for bidding applications only.
	TurnoverYear1 *float64
	TurnoverYear2 *float64
	TurnoverYear3 *float64

	// BiddingNumber identifies the government tender for bidding applications.
	BiddingNumber string
}

// DealerUsecase defines the dealer authorization operations.
type DealerUsecase interface {
	// SubmitApplication validates and persists an application with status
	// pending. Review happens in the back office.
	SubmitApplication(ctx context.Context, input *SubmitApplicationInput) (*entity.DealerApplication, error)

	// ListApplications returns the applications submitted under an email,
	// newest first.
	ListApplications(ctx context.Context, email string) ([]*entity.DealerApplication, error)
}
