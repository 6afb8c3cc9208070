package identity

import (
	"idrive/internal/models"
	"idrive/internal/stores"
)

// Owner is the resolved actor behind a phone number, whichever role table it
// lives in. Exactly one of the role fields is set.
type Owner struct {
	Profile      models.Profile
	Admin        *models.Admin
	Organization *models.Organization
	Driver       *models.Driver
}

// Record returns the underlying role record for response shaping.
func (o *Owner) Record() interface{} {
	switch o.Profile {
	case models.ProfileAdmin:
		return o.Admin
	case models.ProfileOrganization:
		return o.Organization
	default:
		return o.Driver
	}
}

// LookupOwner resolves a phone number against the actor tables in priority
// order admin > organization > driver; the first match wins. Organizations
// must be active to count. Returns nil when no table matches.
func LookupOwner(phoneNumber uint64) (*Owner, error) {
	admins, err := stores.AdminsByFilter(stores.AdminFilter{PhoneNumber: phoneNumber})
	if err != nil {
		return nil, err
	}
	if len(admins) > 0 {
		return &Owner{Profile: models.ProfileAdmin, Admin: &admins[0]}, nil
	}

	active := true
	orgs, err := stores.OrganizationsByFilter(stores.OrganizationFilter{PhoneNumber: phoneNumber, Active: &active})
	if err != nil {
		return nil, err
	}
	if len(orgs) > 0 {
		return &Owner{Profile: models.ProfileOrganization, Organization: &orgs[0]}, nil
	}

	drivers, err := stores.DriversByFilter(stores.DriverFilter{PhoneNumber: phoneNumber})
	if err != nil {
		return nil, err
	}
	if len(drivers) > 0 {
		return &Owner{Profile: models.ProfileDriver, Driver: &drivers[0]}, nil
	}

	return nil, nil
}
