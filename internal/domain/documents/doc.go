// Package documents defines KYC document metadata, the blob storage contract and the
// upload and download services.
package documents
