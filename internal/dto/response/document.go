package response

import "voltride-booking/internal/data/entity"

type MissingDocumentsResponse struct {
	ContractID string   `json:"contractId"`
	Missing    []string `json:"missing"`
}

func NewMissingDocumentsResponse(contractID string, missing []entity.DocumentKind) *MissingDocumentsResponse {
	kinds := make([]string, len(missing))
	for i, kind := range missing {
		kinds[i] = string(kind)
	}

	return &MissingDocumentsResponse{
		ContractID: contractID,
		Missing:    kinds,
	}
}
