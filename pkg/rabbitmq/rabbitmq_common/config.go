package rabbitmq_common

import "fmt"

// Config общая конфигурация подключения к RabbitMQ
type Config struct {
	URL string // Адрес подключения к RabbitMQ
}

// Validate проверяет общую часть конфигурации
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("rabbitmq: URL is required")
	}
	return nil
}
