package constants

// Обменник для доменных событий объявлений
const (
	AdEventsExchange = "ad_events_exchange"
)

// Ключи маршрутизации
const (
	RoutingKeyAdCreated = "ads.ad.created"

	RoutingKeyAdDeleted = "ads.ad.deleted"
)
