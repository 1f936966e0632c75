package entity

type AgencyType string

const (
	AgencyTypeDirect    AgencyType = "DIRECT"
	AgencyTypePartner   AgencyType = "PARTNER"
	AgencyTypeFranchise AgencyType = "FRANCHISE"
)

// EarnsCommission reports whether contracts for this agency type carry
// commission fields.
func (t AgencyType) EarnsCommission() bool {
	return t == AgencyTypePartner || t == AgencyTypeFranchise
}

// CommissionType returns the commission model for the agency type:
// partners get a revenue reversal, franchises a fee deduction.
func (t AgencyType) CommissionType() CommissionType {
	switch t {
	case AgencyTypePartner:
		return CommissionTypeReversal
	case AgencyTypeFranchise:
		return CommissionTypeDeduction
	default:
		return ""
	}
}

type Agency struct {
	Base
	Code           string     `db:"code"`
	Name           string     `db:"name"`
	AgencyType     AgencyType `db:"agency_type"`
	CommissionRate *float64   `db:"commission_rate"`
	ContractSeq    int64      `db:"contract_seq"`
}
