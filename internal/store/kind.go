package store

import (
	"fmt"
	"strings"

	"github.com/charityfund/charity/internal/models"
)

// Kind names one of the five entity collections.
type Kind string

const (
	KindDonor            Kind = "donor"
	KindDonation         Kind = "donation"
	KindProject          Kind = "project"
	KindVolunteer        Kind = "volunteer"
	KindVolunteerProject Kind = "volunteer project"
)

// Kinds lists every kind in menu order.
func Kinds() []Kind {
	return []Kind{KindDonor, KindDonation, KindProject, KindVolunteer, KindVolunteerProject}
}

// Title returns the kind with its first letter upper-cased, for messages.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// ParseKind accepts singular or plural names, with spaces, dashes or
// underscores between words.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	normalized = strings.TrimSuffix(normalized, "s")

	switch normalized {
	case "donor":
		return KindDonor, nil
	case "donation":
		return KindDonation, nil
	case "project":
		return KindProject, nil
	case "volunteer":
		return KindVolunteer, nil
	case "volunteerproject":
		return KindVolunteerProject, nil
	}

	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return "", fmt.Errorf("%w: unknown kind %q (want one of %s)", ErrValidation, s, strings.Join(names, ", "))
}

func (k Kind) model() (interface{}, error) {
	switch k {
	case KindDonor:
		return &models.Donor{}, nil
	case KindDonation:
		return &models.Donation{}, nil
	case KindProject:
		return &models.Project{}, nil
	case KindVolunteer:
		return &models.Volunteer{}, nil
	case KindVolunteerProject:
		return &models.VolunteerProject{}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrValidation, string(k))
}
