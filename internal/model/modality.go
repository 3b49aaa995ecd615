package model

// Modality is a human-friendly financing modality label.
// Keep these values stable; they are intended for CSV and API output.
type Modality string

const (
	ModalityCredit  Modality = "CREDIT"
	ModalitySubsidy Modality = "SUBSIDY"
	ModalityGrant   Modality = "GRANT"
)

// Modalities returns every supported modality in evaluation order.
func Modalities() []Modality {
	return []Modality{ModalityCredit, ModalitySubsidy, ModalityGrant}
}
