package bank

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Column names of the tabular source.
const (
	ColCategory     = "categoria"
	ColPrompt       = "pregunta"
	ColOption1      = "opcion_1"
	ColOption2      = "opcion_2"
	ColOption3      = "opcion_3"
	ColCorrect      = "respuesta_correcta"
	ColExplanation1 = "explicacion_1"
	ColExplanation2 = "explicacion_2"
	ColExplanation3 = "explicacion_3"
)

// Columns lists every required column in canonical order.
var Columns = []string{
	ColCategory, ColPrompt,
	ColOption1, ColOption2, ColOption3,
	ColCorrect,
	ColExplanation1, ColExplanation2, ColExplanation3,
}

// row is one raw source row before conversion to a QuestionRecord.
// Option texts must be distinct so a selected text maps back to one slot.
type row struct {
	Category     string `json:"categoria" validate:"required"`
	Prompt       string `json:"pregunta" validate:"required"`
	Option1      string `json:"opcion_1" validate:"required"`
	Option2      string `json:"opcion_2" validate:"required,nefield=Option1"`
	Option3      string `json:"opcion_3" validate:"required,nefield=Option1,nefield=Option2"`
	Correct      string `json:"respuesta_correcta" validate:"required"`
	Explanation1 string `json:"explicacion_1"`
	Explanation2 string `json:"explicacion_2"`
	Explanation3 string `json:"explicacion_3"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func rowValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report source column names instead of Go field names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// toRecord validates r and converts it into a QuestionRecord with the given ID.
// The returned error carries the offending column when one can be named.
func (r row) toRecord(id int) (QuestionRecord, string, error) {
	if err := rowValidator().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "required":
				return QuestionRecord{}, fe.Field(), fmt.Errorf("%w: empty value", ErrInvalidRow)
			case "nefield":
				return QuestionRecord{}, fe.Field(), fmt.Errorf("%w: duplicate option text %q", ErrInvalidRow, fe.Value())
			}
			return QuestionRecord{}, fe.Field(), fmt.Errorf("%w: failed %q check", ErrInvalidRow, fe.Tag())
		}
		return QuestionRecord{}, "", fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}

	correct, err := parseCorrectIndex(r.Correct)
	if err != nil {
		return QuestionRecord{}, ColCorrect, err
	}

	return QuestionRecord{
		ID:           id,
		Category:     strings.TrimSpace(r.Category),
		Prompt:       r.Prompt,
		Options:      [NumOptions]string{r.Option1, r.Option2, r.Option3},
		CorrectIndex: correct,
		Explanations: map[int]string{
			1: r.Explanation1,
			2: r.Explanation2,
			3: r.Explanation3,
		},
	}, "", nil
}

// parseCorrectIndex parses respuesta_correcta, which may arrive as text
// ("2", " 2 ") or as a float rendering of an integer ("2.0").
func parseCorrectIndex(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAnswer, raw)
		}
		n = int(f)
	}
	if n < 1 || n > NumOptions {
		return 0, fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidAnswer, n, NumOptions)
	}
	return n, nil
}
