// Package users defines user accounts, roles, sessions and the authentication contracts.
package users
