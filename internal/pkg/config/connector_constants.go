package config

// AzureCloudProvider represents Microsoft Azure Blob Storage
const AzureCloudProvider = "azure"

// LocalCloudProvider stores blobs on the local filesystem (development and tests)
const LocalCloudProvider = "local"

// Identity provider constants
const (
	IdentityToolkitProvider  = "identitytoolkit"
	InsecureIdentityProvider = "insecure"
)

// Notification queue modes
const (
	QueueDirect = "direct"
	QueueKafka  = "kafka"
)

// Assistant provider constants
const (
	AssistantGenAI    = "genai"
	AssistantDisabled = "disabled"
)

// Environment constants
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
