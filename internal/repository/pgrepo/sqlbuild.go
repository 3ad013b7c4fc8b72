package pgrepo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fsdevblog/groph-referral/internal/repository/repoargs"
)

// buildWhere собирает SQL условия из repoargs.Cond. colMap - белый список: логическое имя
// колонки -> SQL выражение. Неизвестная колонка или оператор - ошибка, значения всегда
// уходят плейсхолдерами.
func buildWhere(conds []repoargs.Cond, colMap map[string]string, args []any) (string, []any, error) {
	parts := make([]string, 0, len(conds))
	for _, cond := range conds {
		col, ok := colMap[cond.Column]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter column %q", cond.Column)
		}
		switch cond.Op {
		case repoargs.OpEq:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s = $%d", col, len(args)))
		case repoargs.OpNotEq:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s <> $%d", col, len(args)))
		case repoargs.OpLike:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s LIKE '%%' || $%d || '%%'", col, len(args)))
		case repoargs.OpGte:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s >= $%d", col, len(args)))
		case repoargs.OpLte:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s <= $%d", col, len(args)))
		case repoargs.OpBetween:
			args = append(args, cond.Value, cond.UpperValue)
			parts = append(parts, fmt.Sprintf("%s BETWEEN $%d AND $%d", col, len(args)-1, len(args)))
		default:
			return "", nil, fmt.Errorf("unknown filter op %q", cond.Op)
		}
	}
	return strings.Join(parts, " AND "), args, nil
}

// buildPatch собирает SET часть частичного обновления. Ключи сортируются для
// детерминированного порядка плейсхолдеров.
func buildPatch(patch repoargs.Patch, colMap map[string]string, args []any) (string, []any, error) {
	if len(patch) == 0 {
		return "", nil, fmt.Errorf("empty update patch")
	}

	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	for _, k := range keys {
		col, ok := colMap[k]
		if !ok {
			return "", nil, fmt.Errorf("unknown patch column %q", k)
		}
		args = append(args, patch[k])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return strings.Join(sets, ", "), args, nil
}

func appendCondition(where, cond string) string {
	if where == "" {
		return cond
	}
	return where + " AND " + cond
}
