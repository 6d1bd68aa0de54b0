package calendar

// DefaultTimeZone is the zone used when no zone has been configured.
const DefaultTimeZone = "Europe/Moscow"

type Zone struct {
	Name  string `json:"value"`
	Label string `json:"label"`
}

var supportedZones = []Zone{
	{Name: "Europe/Moscow", Label: "Москва (Europe/Moscow) — UTC+3"},
	{Name: "UTC", Label: "UTC (без смещения)"},
	{Name: "Europe/Kaliningrad", Label: "Калининград (Europe/Kaliningrad) — UTC+2"},
	{Name: "Europe/Samara", Label: "Самара (Europe/Samara) — UTC+4"},
	{Name: "Asia/Yekaterinburg", Label: "Екатеринбург (Asia/Yekaterinburg) — UTC+5"},
	{Name: "Asia/Omsk", Label: "Омск (Asia/Omsk) — UTC+6"},
	{Name: "Asia/Krasnoyarsk", Label: "Красноярск (Asia/Krasnoyarsk) — UTC+7"},
	{Name: "Asia/Irkutsk", Label: "Иркутск (Asia/Irkutsk) — UTC+8"},
	{Name: "Asia/Yakutsk", Label: "Якутск (Asia/Yakutsk) — UTC+9"},
	{Name: "Asia/Vladivostok", Label: "Владивосток (Asia/Vladivostok) — UTC+10"},
	{Name: "Asia/Magadan", Label: "Магадан (Asia/Magadan) — UTC+11"},
	{Name: "Asia/Kamchatka", Label: "Камчатка (Asia/Kamchatka) — UTC+12"},
}

// SupportedZones returns the zones offered for selection. Any IANA zone is
// accepted by NewResolver; this list is only what the settings surface offers.
func SupportedZones() []Zone {
	zones := make([]Zone, len(supportedZones))
	copy(zones, supportedZones)
	return zones
}
