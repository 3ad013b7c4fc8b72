package repoargs

// Op оператор условия выборки.
type Op string

const (
	OpEq      Op = "eq"
	OpNotEq   Op = "not_eq"
	OpLike    Op = "like"
	OpGte     Op = "gte"
	OpLte     Op = "lte"
	OpBetween Op = "between"
)

// Cond одно условие выборки. Column - логическое имя колонки, репозиторий сам
// сопоставляет его с SQL выражением по белому списку. Для OpBetween используется
// пара Value/UpperValue.
type Cond struct {
	Column     string
	Op         Op
	Value      any
	UpperValue any
}

// Query параметры выборки: условия, пагинация и флаги связей.
// WithDeleted включает в выборку мягко удаленные записи.
type Query struct {
	Where       []Cond
	Skip        uint
	Take        uint
	WithUser    bool
	WithDeleted bool
}

// Patch частичное обновление: логическое имя колонки -> новое значение.
// Набор допустимых колонок ограничен белым списком репозитория.
type Patch map[string]any
