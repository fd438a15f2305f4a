package domain

import "github.com/shopspring/decimal"

// PartyRole is the persisted role of a counterparty.
type PartyRole int

const (
	RoleCustomer       PartyRole = 0
	RoleVendor         PartyRole = 1
	RoleDefaultVendor  PartyRole = 10
	RoleWalkInCustomer PartyRole = 11
	RoleInvestor       PartyRole = 12
	RoleExpense        PartyRole = 14
	RoleExtraIncome    PartyRole = 15
)

// RoleClass is the counterparty class a balance is viewed from.
type RoleClass int

const (
	RoleClassNone RoleClass = iota
	RoleClassCustomer
	RoleClassVendor
	RoleClassInvestor
)

func (c RoleClass) String() string {
	switch c {
	case RoleClassCustomer:
		return "customer"
	case RoleClassVendor:
		return "vendor"
	case RoleClassInvestor:
		return "investor"
	default:
		return "none"
	}
}

// Class folds a role onto the customer/vendor/investor classes.
// Expense and income heads have no balance class.
func (r PartyRole) Class() RoleClass {
	switch r {
	case RoleCustomer, RoleWalkInCustomer:
		return RoleClassCustomer
	case RoleVendor, RoleDefaultVendor:
		return RoleClassVendor
	case RoleInvestor:
		return RoleClassInvestor
	default:
		return RoleClassNone
	}
}

// Party is a counterparty. Balance is the running total cached by the entry flows.
type Party struct {
	PartyID        string          `json:"partyID"`
	BusinessID     string          `json:"businessID"`
	Name           string          `json:"name"`
	Role           PartyRole       `json:"role"`
	AreaID         *string         `json:"areaID,omitempty"`
	CategoryID     *string         `json:"categoryID,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	AuditFields
}

// PartiesByID indexes parties by id.
func PartiesByID(parties []Party) map[string]Party {
	byID := make(map[string]Party, len(parties))
	for _, p := range parties {
		byID[p.PartyID] = p
	}
	return byID
}
