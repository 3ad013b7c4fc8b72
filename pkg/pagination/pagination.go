// Package pagination содержит чистую математику страниц: никакого I/O,
// только расчет метаданных по общему числу записей, странице и лимиту.
package pagination

type Pagination struct {
	TotalData   int64 `json:"total_data"`
	PerPage     uint  `json:"per_page"`
	TotalPage   uint  `json:"total_page"`
	CurrentPage uint  `json:"current_page"`
	NextPage    *uint `json:"next_page"`
	PrevPage    *uint `json:"prev_page"`
}

type Page[T any] struct {
	List       []T        `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// Paginate оборачивает выборку метаданными страницы.
// Инварианты: total_page = ceil(totalData/limit) (0 при totalData = 0);
// next_page = page+1 только если page < total_page; prev_page = page-1 только если page > 1.
// limit = 0 не делится: такая страница считается пустой (total_page = 0, указатели nil).
func Paginate[T any](list []T, totalData int64, page, limit uint) Page[T] {
	var totalPage uint
	if totalData > 0 && limit > 0 {
		totalPage = uint((totalData + int64(limit) - 1) / int64(limit))
	}

	var nextPage, prevPage *uint
	if page < totalPage {
		next := page + 1
		nextPage = &next
	}
	if page > 1 {
		prev := page - 1
		prevPage = &prev
	}

	return Page[T]{
		List: list,
		Pagination: Pagination{
			TotalData:   totalData,
			PerPage:     limit,
			TotalPage:   totalPage,
			CurrentPage: page,
			NextPage:    nextPage,
			PrevPage:    prevPage,
		},
	}
}
