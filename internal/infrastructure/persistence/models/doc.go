// Package models contains the GORM database models. Each model converts to and from
// its domain entity with ToDomain and FromDomain.
package models
