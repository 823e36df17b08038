// Package partners defines dealers and technicians, the marketplace participants that
// register with a business profile, pass KYC review and carry a trust score.
package partners
