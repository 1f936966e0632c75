package usecase

import "voltride-booking/internal/data/entity"

// missingDocuments returns the document kinds still required before the
// contract can be finalized. Identity captures are always required; license
// captures only for vehicles that need a driving license to operate.
func missingDocuments(c *entity.RentalContract, requiresLicense bool) []entity.DocumentKind {
	required := []entity.DocumentKind{
		entity.DocumentIDCardFront,
		entity.DocumentIDCardBack,
	}
	if requiresLicense {
		required = append(required, entity.DocumentLicenseFront, entity.DocumentLicenseBack)
	}

	var missing []entity.DocumentKind
	for _, kind := range required {
		url := c.DocumentURL(kind)
		if url == nil || *url == "" {
			missing = append(missing, kind)
		}
	}

	return missing
}
