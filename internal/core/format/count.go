package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UILanguage - язык интерфейса дашборда
var UILanguage = language.Spanish

// RecordCount - число записей с разделителями разрядов языка интерфейса
func RecordCount(n int) string {
	return RecordCountIn(UILanguage, n)
}

func RecordCountIn(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}
