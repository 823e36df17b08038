// Package connector adapts external systems to the domain ports: blob storage for
// uploaded documents and images, the identity provider, the notification channels and
// the AI assistant.
package connector
