// Package entity contains the core business objects of the project.
package entity

// SaleStatus represents the lifecycle state of a sale. It is stored and
// compared as its integer code; label rendering happens only at the HTTP
// boundary.
type SaleStatus int

const (
	// SaleStatusInProgress indicates a sale that is still being assembled.
	SaleStatusInProgress SaleStatus = 0
	// SaleStatusRegistered indicates a sale that has been registered.
	SaleStatusRegistered SaleStatus = 1
	// SaleStatusPaid indicates a sale that has been paid.
	SaleStatusPaid SaleStatus = 2
	// SaleStatusNulled indicates a voided sale.
	SaleStatusNulled SaleStatus = 3
)

// String returns the stable label for the status.
func (s SaleStatus) String() string {
	switch s {
	case SaleStatusInProgress:
		return "in_progress"
	case SaleStatusRegistered:
		return "registered"
	case SaleStatusPaid:
		return "paid"
	case SaleStatusNulled:
		return "nulled"
	default:
		return "unknown"
	}
}

// Code returns the integer wire code of the status.
func (s SaleStatus) Code() int {
	return int(s)
}

// IsValid checks if the SaleStatus is one of the four defined codes.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusInProgress, SaleStatusRegistered, SaleStatusPaid, SaleStatusNulled:
		return true
	default:
		return false
	}
}
