package report

import "fmt"

// UnsupportedFilterError - у пары поле/оператор нет аналога в поиске шлюза.
// Ошибка конфигурации вызывающего кода, повтор не поможет.
type UnsupportedFilterError struct {
	Field    string
	Operator string
	Reason   string
}

func (e *UnsupportedFilterError) Error() string {
	if e.Operator == "" {
		return fmt.Sprintf("unsupported filter on %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("unsupported filter %q on %q: %s", e.Operator, e.Field, e.Reason)
}
