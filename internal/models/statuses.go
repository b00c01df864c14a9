package models

type UserRole string
type ApplicationStatus string
type PaymentStatus string

const (
	UserRoleAgent    UserRole = "agent"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusHired     ApplicationStatus = "hired"

	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// applicationTransitions is the closed transition table for the
// application workflow. rejected and hired are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:   {ApplicationStatusReviewing, ApplicationStatusRejected, ApplicationStatusHired},
	ApplicationStatusReviewing: {ApplicationStatusRejected, ApplicationStatusHired},
	ApplicationStatusRejected:  {},
	ApplicationStatusHired:     {},
}

// IsValidApplicationStatus reports whether s is a known status value.
func IsValidApplicationStatus(s ApplicationStatus) bool {
	_, ok := applicationTransitions[s]
	return ok
}

// CanTransition reports whether the from -> to status change is allowed.
func CanTransition(from, to ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
