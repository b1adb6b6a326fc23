package constants

// Обменник для событий об изменении сущностей.
// Ключи маршрутизации: <entity>.<action>, например client.created.
const (
	AgencyExchange     = "agency_exchange"
	AgencyExchangeType = "topic"
)
