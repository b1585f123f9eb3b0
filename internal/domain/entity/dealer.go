package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationType distinguishes the two dealer authorization request kinds.
type ApplicationType string

const (
	// ApplicationTypeL1 is a standard L1 dealer authorization request.
	ApplicationTypeL1 ApplicationType = "L1"

	// ApplicationTypeBidding is an authorization request tied to a specific
	// government bidding number; it requires three years of turnover.
	ApplicationTypeBidding ApplicationType = "Bidding"
)

// DealerApplication is a dealer/OEM authorization request. Applications are
// independent submission records: they do not participate in the quote
// lifecycle and are only ever inserted and listed by this service.
type DealerApplication struct {
	ID                  uuid.UUID       `json:"id"`
	Type                ApplicationType `json:"type"`
	DealerName          string          `json:"dealer_name"`   // Firm name.
	DirectorName        string          `json:"director_name"` // Director or proprietor.
	Address             string          `json:"address"`
	Email               string          `json:"email"`
	Mobile              string          `json:"mobile"`
	DirectorEmail       string          `json:"director_email"`
	DirectorMobile      string          `json:"director_mobile"`
	GSTNumber           string          `json:"gst_number"`
	ProductRequirements string          `json:"product_requirements"` // "Category: qty; Category: qty" lines.
	TurnoverYear1       *float64        `json:"turnover_year1,omitempty"`
	TurnoverYear2       *float64        `json:"turnover_year2,omitempty"`
	TurnoverYear3       *float64        `json:"turnover_year3,omitempty"`
	Remarks             string          `json:"remarks"` // Bidding number or turnover note, depending on type.
	Status              string          `json:"status"`  // Always "pending" on insert; reviewed externally.
	CreatedAt           time.Time       `json:"created_at"`
}
