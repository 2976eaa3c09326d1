package braintree

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// SearchNode - узел поискового запроса по транзакциям.
// Каждый узел относится к одному полю и несёт набор критериев (оператор -> значение).
type SearchNode interface {
	// Field возвращает имя поля транзакции в терминах search API
	Field() string
	// Criteria возвращает накопленные критерии узла
	Criteria() map[string]any
}

// TextNode - текстовый узел (is, is_not, starts_with, ends_with, contains)
type TextNode struct {
	field    string
	criteria map[string]any
}

// NewTextNode создаёт текстовый узел для поля
func NewTextNode(field string) *TextNode {
	return &TextNode{field: field, criteria: make(map[string]any)}
}

func (n *TextNode) Field() string { return n.field }
func (n *TextNode) Criteria() map[string]any { return n.criteria }

// Is задаёт точное совпадение
func (n *TextNode) Is(value string) *TextNode {
	n.criteria["is"] = value
	return n
}

// IsNot исключает точное совпадение
func (n *TextNode) IsNot(value string) *TextNode {
	n.criteria["is_not"] = value
	return n
}

// StartsWith задаёт совпадение по префиксу
func (n *TextNode) StartsWith(value string) *TextNode {
	n.criteria["starts_with"] = value
	return n
}

// EndsWith задаёт совпадение по суффиксу
func (n *TextNode) EndsWith(value string) *TextNode {
	n.criteria["ends_with"] = value
	return n
}

// Contains задаёт совпадение по подстроке
func (n *TextNode) Contains(value string) *TextNode {
	n.criteria["contains"] = value
	return n
}

// RangeNode - узел диапазона для дат и сумм
type RangeNode struct {
	field    string
	criteria map[string]any
}

// NewRangeNode создаёт узел диапазона для поля
func NewRangeNode(field string) *RangeNode {
	return &RangeNode{field: field, criteria: make(map[string]any)}
}

func (n *RangeNode) Field() string { return n.field }
func (n *RangeNode) Criteria() map[string]any { return n.criteria }

// GreaterThanOrEqualTo задаёт нижнюю границу (включительно)
func (n *RangeNode) GreaterThanOrEqualTo(value any) *RangeNode {
	n.criteria["min"] = value
	return n
}

// LessThanOrEqualTo задаёт верхнюю границу (включительно)
func (n *RangeNode) LessThanOrEqualTo(value any) *RangeNode {
	n.criteria["max"] = value
	return n
}

// Is задаёт точное значение
func (n *RangeNode) Is(value any) *RangeNode {
	n.criteria["is"] = value
	return n
}

// Between задаёт обе границы
func (n *RangeNode) Between(min, max any) *RangeNode {
	return n.GreaterThanOrEqualTo(min).LessThanOrEqualTo(max)
}

// MultipleValueNode - узел перечисления (type, status, payment_instrument_type)
type MultipleValueNode struct {
	field    string
	allowed  []string
	criteria map[string]any
}

// NewMultipleValueNode создаёт узел перечисления.
// allowed ограничивает допустимые значения; пустой список снимает ограничение.
func NewMultipleValueNode(field string, allowed ...string) *MultipleValueNode {
	return &MultipleValueNode{field: field, allowed: allowed, criteria: make(map[string]any)}
}

func (n *MultipleValueNode) Field() string { return n.field }
func (n *MultipleValueNode) Criteria() map[string]any { return n.criteria }

// Allowed возвращает список допустимых значений
func (n *MultipleValueNode) Allowed() []string { return n.allowed }

// Is задаёт одно значение
func (n *MultipleValueNode) Is(value string) *MultipleValueNode {
	return n.In(value)
}

// In задаёт набор значений
func (n *MultipleValueNode) In(values ...string) *MultipleValueNode {
	n.criteria["in"] = values
	return n
}

// ErrConflictingCriteria - узлы одного поля не могут выполняться одновременно
var ErrConflictingCriteria = errors.New("braintree: conflicting search criteria")

// Query объединяет узлы через логическое И и возвращает критерии по полям.
// Узлы одного поля сужают друг друга: наборы in пересекаются, из min берётся
// больший, из max меньший. Разные точные значения (is, contains, ...) одного
// поля дают ErrConflictingCriteria. Пустое пересечение in не ошибка: такой
// запрос ничего не находит.
func Query(nodes []SearchNode) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(nodes))
	kinds := make(map[string]NodeKind, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		field := node.Field()
		kind := KindOf(node)
		if prev, ok := kinds[field]; ok && prev != kind {
			return nil, fmt.Errorf("%w: %s mixes %s and %s nodes", ErrConflictingCriteria, field, prev, kind)
		}
		kinds[field] = kind

		criteria, ok := out[field]
		if !ok {
			criteria = make(map[string]any)
			out[field] = criteria
		}
		for op, value := range node.Criteria() {
			prev, ok := criteria[op]
			if !ok {
				criteria[op] = value
				continue
			}
			merged, err := mergeCriterion(op, prev, value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %s: %v", ErrConflictingCriteria, field, op, err)
			}
			criteria[op] = merged
		}
	}
	return out, nil
}

// NodeKind - вид узла поиска
type NodeKind string

const (
	KindText          NodeKind = "text"
	KindRange         NodeKind = "range"
	KindMultipleValue NodeKind = "multiple_value"
)

// KindOf определяет вид узла; для сторонних реализаций SearchNode вид
// выводится из операторов.
func KindOf(node SearchNode) NodeKind {
	switch node.(type) {
	case *TextNode:
		return KindText
	case *RangeNode:
		return KindRange
	case *MultipleValueNode:
		return KindMultipleValue
	}
	criteria := node.Criteria()
	if _, ok := criteria["in"]; ok {
		return KindMultipleValue
	}
	_, hasMin := criteria["min"]
	_, hasMax := criteria["max"]
	if hasMin || hasMax {
		return KindRange
	}
	return KindText
}

func mergeCriterion(op string, prev, next any) (any, error) {
	switch op {
	case "in":
		return intersect(StringValues(prev), StringValues(next)), nil
	case "min", "max":
		cmp, err := compareRange(prev, next)
		if err != nil {
			return nil, err
		}
		if (op == "min" && cmp >= 0) || (op == "max" && cmp <= 0) {
			return prev, nil
		}
		return next, nil
	default:
		if RangeString(prev) != RangeString(next) {
			return nil, fmt.Errorf("values %q and %q cannot both hold", RangeString(prev), RangeString(next))
		}
		return prev, nil
	}
}

func intersect(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// compareRange сравнивает границы как суммы или как даты RFC3339
func compareRange(a, b any) (int, error) {
	as, bs := RangeString(a), RangeString(b)
	if ad, err := decimal.NewFromString(as); err == nil {
		if bd, err := decimal.NewFromString(bs); err == nil {
			return ad.Cmp(bd), nil
		}
	}
	if at, err := time.Parse(time.RFC3339, as); err == nil {
		if bt, err := time.Parse(time.RFC3339, bs); err == nil {
			return at.Compare(bt), nil
		}
	}
	return 0, fmt.Errorf("bounds %q and %q are not comparable", as, bs)
}

// RangeString приводит значение критерия к строке: даты в UTC RFC3339, суммы без хвостовых нулей
func RangeString(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.String()
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

// StringValues приводит значение критерия in к списку строк
func StringValues(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}
