// Package format превращает сырые числовые и необязательные поля в строки для отображения.
package format

import (
	"math"
	"strconv"
)

// Placeholder выводится вместо отсутствующих значений
const Placeholder = "—"

type magnitude struct {
	threshold float64
	suffix    string
}

// порядок важен: от большего к меньшему
var magnitudes = []magnitude{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Currency форматирует сумму в долларах с сокращением порядка:
// 1_500_000 -> "$1.5M", 2_000_000_000 -> "$2B", 500 -> "$500", nil -> "—".
func Currency(value *float64) string {
	if value == nil {
		return Placeholder
	}

	v := *value
	abs := math.Abs(v)
	for _, m := range magnitudes {
		if abs >= m.threshold {
			return "$" + scaled(v/m.threshold) + m.suffix
		}
	}

	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// scaled: целое значение без дробной части, иначе ровно один знак
func scaled(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Year - год основания или плейсхолдер
func Year(value *int) string {
	if value == nil {
		return Placeholder
	}
	return strconv.Itoa(*value)
}
