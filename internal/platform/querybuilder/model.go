package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// InsertModel inserts every db-tagged exported field of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

// UpdateModel sets every db-tagged column of model except keyColumn and
// matches the row on keyColumn.
func UpdateModel(table string, model any, keyColumn string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	var key any
	found := false
	for i, col := range cols {
		if col == keyColumn {
			key, found = vals[i], true
			continue
		}
		b.Set(col, vals[i])
	}
	if !found {
		return "", nil, fmt.Errorf("model has no %s column", keyColumn)
	}
	return b.Where(Eq(keyColumn, key)).ToSQL()
}

type column struct {
	name  string
	index int
}

// columnCache maps a struct type to its db columns in field order.
var columnCache sync.Map

func columnsOf(typ reflect.Type) []column {
	if cached, ok := columnCache.Load(typ); ok {
		return cached.([]column)
	}

	cols := make([]column, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, column{name: name, index: i})
	}

	actual, _ := columnCache.LoadOrStore(typ, cols)
	return actual.([]column)
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	plan := columnsOf(value.Type())
	if len(plan) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", value.Type())
	}

	cols := make([]string, len(plan))
	vals := make([]any, len(plan))
	for i, c := range plan {
		cols[i] = c.name
		vals[i] = value.Field(c.index).Interface()
	}
	return cols, vals, nil
}
