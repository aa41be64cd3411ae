package validate

import (
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends non-nil field errors.
func (e Errs) Add(errs ...*ErrField) Errs {
	for _, ef := range errs {
		if ef != nil {
			e = append(e, *ef)
		}
	}
	return e
}

// ID parses a path id. Ids are non-negative integers.
func ID(field, value string) (int64, *ErrField) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, &ErrField{Field: field, Msg: "required"}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &ErrField{Field: field, Msg: "must be an integer"}
	}
	if ef := MinInt(field, n, 0); ef != nil {
		return 0, ef
	}
	return n, nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}
