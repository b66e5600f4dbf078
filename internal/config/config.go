package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultSalesWebhookURL is empty; sales check-ins fail until a webhook
	// URL is configured.
	DefaultSalesWebhookURL = ""
)
