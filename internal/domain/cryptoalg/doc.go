// Package cryptoalg defines the symmetric encryption contract used to protect KYC documents at rest.
package cryptoalg
