package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrAddonNotFound      = errors.New("add-on not found")
	ErrInvalidCode        = errors.New("invalid code")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidDiscount    = errors.New("invalid discount percentage")
	ErrInvalidQuota       = errors.New("invalid quota")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

func planNotFound(code string) error {
	return fmt.Errorf("%w: %s", ErrPlanNotFound, code)
}

func addonNotFound(code string) error {
	return fmt.Errorf("%w: %s", ErrAddonNotFound, code)
}
