package partners

// PartnerType distinguishes dealer and technician profiles
type PartnerType string

// Partner types
const (
	TypeDealer     PartnerType = "DEALER"
	TypeTechnician PartnerType = "TECHNICIAN"
)

// Valid reports whether t is a known partner type
func (t PartnerType) Valid() bool {
	return t == TypeDealer || t == TypeTechnician
}

// AccountStatus is the admin approval state of a profile
type AccountStatus string

// Account statuses
const (
	AccountPending   AccountStatus = "PENDING"
	AccountApproved  AccountStatus = "APPROVED"
	AccountRejected  AccountStatus = "REJECTED"
	AccountSuspended AccountStatus = "SUSPENDED"
)

var accountTransitions = map[AccountStatus][]AccountStatus{
	AccountPending:   {AccountApproved, AccountRejected},
	AccountApproved:  {AccountSuspended},
	AccountSuspended: {AccountApproved},
	AccountRejected:  {AccountApproved},
}

// CanTransitionTo reports whether an admin may move the account from s to next
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	for _, allowed := range accountTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequiresReason reports whether moving into s needs a reason
func (s AccountStatus) RequiresReason() bool {
	return s == AccountRejected || s == AccountSuspended
}

// KYCStatus is the document verification state of a profile
type KYCStatus string

// KYC statuses
const (
	KYCNotSubmitted KYCStatus = "NOT_SUBMITTED"
	KYCSubmitted    KYCStatus = "SUBMITTED"
	KYCVerified     KYCStatus = "VERIFIED"
	KYCRejected     KYCStatus = "REJECTED"
)

// CanReviewTo reports whether an admin review may move KYC from s to next
func (s KYCStatus) CanReviewTo(next KYCStatus) bool {
	return s == KYCSubmitted && (next == KYCVerified || next == KYCRejected)
}

// AfterUpload returns the KYC status once a new document has been uploaded
func (s KYCStatus) AfterUpload() KYCStatus {
	if s == KYCNotSubmitted || s == KYCRejected {
		return KYCSubmitted
	}
	return s
}

// DefaultTrustScore is assigned to every new profile
const DefaultTrustScore = 50
