package repository

const (
	keyPrefix = "bts:"

	routesKey   = keyPrefix + "routes"
	outletsKey  = keyPrefix + "outlets"
	visitsKey   = keyPrefix + "visits"
	settingsKey = keyPrefix + "settings"

	timeZoneField = "timezone"
)
