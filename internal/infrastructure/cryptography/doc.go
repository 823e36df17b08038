// Package cryptography implements the symmetric encryption used for KYC documents at rest.
package cryptography
