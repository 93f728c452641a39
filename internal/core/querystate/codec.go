// Package querystate синхронизирует состояние фильтров и пагинации со строкой
// запроса URL. Все функции чистые: навигацию выполняет вызывающий код.
package querystate

import (
	"net/url"
	"strconv"
	"strings"

	"saas-dashboard/internal/core/domain"
)

// Ключи query-параметров
const (
	KeyIndustryID = "industry_id"
	KeyLocationID = "location_id"
	KeyPage       = "page"
)

// IsFilterKey - смена этих ключей всегда сбрасывает пагинацию
func IsFilterKey(key string) bool {
	return key == KeyIndustryID || key == KeyLocationID
}

// Decode восстанавливает FilterState из строки запроса.
// Некорректные значения никогда не дают ошибку: фильтр снимается, страница = 1.
func Decode(rawQuery string) domain.FilterState {
	values := parse(rawQuery)

	state := domain.DefaultFilterState()
	state.IndustryID = parsePositive(values.Get(KeyIndustryID))
	state.LocationID = parsePositive(values.Get(KeyLocationID))
	if page := parsePositive(values.Get(KeyPage)); page != nil {
		state.Page = *page
	}
	return state
}

// Encode выставляет key=value (или удаляет key при пустом value).
// Если меняется фильтр, page удаляется безусловно.
func Encode(rawQuery, key, value string) string {
	values := parse(rawQuery)

	if value != "" {
		values.Set(key, value)
	} else {
		values.Del(key)
	}

	if IsFilterKey(key) {
		values.Del(KeyPage)
	}
	return values.Encode()
}

// EncodePage выставляет номер страницы. page=1 в каноническом URL не пишется.
func EncodePage(rawQuery string, page int) string {
	values := parse(rawQuery)

	if page > 1 {
		values.Set(KeyPage, strconv.Itoa(page))
	} else {
		values.Del(KeyPage)
	}
	return values.Encode()
}

// Clear - канонический URL без фильтров
func Clear() string {
	return ""
}

// EncodeState - каноническая строка запроса для полного состояния
func EncodeState(state domain.FilterState) string {
	values := url.Values{}
	if state.IndustryID != nil {
		values.Set(KeyIndustryID, strconv.Itoa(*state.IndustryID))
	}
	if state.LocationID != nil {
		values.Set(KeyLocationID, strconv.Itoa(*state.LocationID))
	}
	if state.Page > 1 {
		values.Set(KeyPage, strconv.Itoa(state.Page))
	}
	return values.Encode()
}

// parse разбирает строку запроса. ParseQuery при ошибке все равно
// возвращает то, что удалось разобрать, этого достаточно.
func parse(rawQuery string) url.Values {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if values == nil {
		values = url.Values{}
	}
	return values
}

func parsePositive(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil
	}
	return &n
}
