package querystate

// Pager - состояние кнопок навигации по страницам.
// Значения берутся из ответа backend, ничего не пересчитывается.
type Pager struct {
	Page       int
	TotalPages int
}

func (p Pager) HasPrev() bool {
	return p.Page > 1
}

func (p Pager) HasNext() bool {
	return p.Page < p.TotalPages
}

// PrevQuery / NextQuery - строки запроса для соседних страниц
func (p Pager) PrevQuery(rawQuery string) string {
	return EncodePage(rawQuery, p.Page-1)
}

func (p Pager) NextQuery(rawQuery string) string {
	return EncodePage(rawQuery, p.Page+1)
}
