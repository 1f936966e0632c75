package request

// AttachDocumentRequest attaches one captured document image to a contract.
type AttachDocumentRequest struct {
	Kind string `json:"kind" validate:"required,oneof=ID_CARD_FRONT ID_CARD_BACK LICENSE_FRONT LICENSE_BACK"`
	URL  string `json:"url" validate:"required,url"`
}
