package format

// Badge - отображаемая категория отрасли
type Badge struct {
	Label   string
	Classes string
}

const DefaultBadgeClasses = "bg-slate-600 text-slate-100"

var industryBadgeClasses = map[string]string{
	"Fintech":       "bg-teal-600 text-teal-100",
	"HealthTech":    "bg-emerald-600 text-emerald-100",
	"EdTech":        "bg-green-600 text-green-100",
	"CyberSecurity": "bg-cyan-600 text-cyan-100",
	"AI / ML":       "bg-blue-600 text-blue-100",
	"DevTools":      "bg-indigo-600 text-indigo-100",
	"MarTech":       "bg-violet-600 text-violet-100",
	"HRTech":        "bg-orange-600 text-orange-100",
	"CloudInfra":    "bg-sky-600 text-sky-100",
	"DataAnalytics": "bg-purple-600 text-purple-100",
}

// IndustryBadge сопоставляет название отрасли с категорией бейджа.
// Неизвестные отрасли получают категорию по умолчанию.
func IndustryBadge(name string) Badge {
	classes, ok := industryBadgeClasses[name]
	if !ok {
		classes = DefaultBadgeClasses
	}
	return Badge{Label: name, Classes: classes}
}
