package config

import "os"

const (
	amqpURLEnv          = "AMQP_URL"
	routeImportQueueEnv = "ROUTE_IMPORT_QUEUE"
	amqpPrefetchEnv     = "AMQP_PREFETCH"

	defaultRouteImportQueue = "routes.imported"
	defaultAMQPPrefetch     = 1
)

type MessagingConfig struct {
	// URL empty disables the route-import consumer.
	URL              string
	RouteImportQueue string
	Prefetch         int
}

func LoadMessagingConfig() *MessagingConfig {
	queue := os.Getenv(routeImportQueueEnv)
	if queue == "" {
		queue = defaultRouteImportQueue
	}

	return &MessagingConfig{
		URL:              os.Getenv(amqpURLEnv),
		RouteImportQueue: queue,
		Prefetch:         positiveIntEnv(amqpPrefetchEnv, defaultAMQPPrefetch),
	}
}

func (c *MessagingConfig) Enabled() bool {
	return c != nil && c.URL != ""
}

func (c *MessagingConfig) Validate() error {
	if c.Enabled() && c.RouteImportQueue == "" {
		return ErrImportQueueMissing
	}
	return nil
}
