package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
)

// TransactionMaximumCount - число записей, материализуемых коллекцией без явного размера страницы
const TransactionMaximumCount = 1000

// TransactionItemType - тип записи, передаваемый фабрике документов
const TransactionItemType = "transaction"

// Condition - условие фильтра: оператор (eq, like, in, from, to) -> значение
type Condition map[string]any

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Searcher --dir=. --output=./mocks --outpkg=mocks

// Searcher выполняет один поисковый запрос к шлюзу
type Searcher interface {
	Search(ctx context.Context, filters []braintree.SearchNode) ([]braintree.Transaction, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=FilterProvider --dir=. --output=./mocks --outpkg=mocks

// FilterProvider переводит условие по полю в узел поиска шлюза.
// nil-узел без ошибки означает, что фильтр по полю не поддерживается и пропускается.
type FilterProvider interface {
	GetFilter(field string, condition Condition) (braintree.SearchNode, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntityFactory --dir=. --output=./mocks --outpkg=mocks

// EntityFactory создаёт запись отчёта из сырой транзакции
type EntityFactory interface {
	Create(itemType string, tx braintree.Transaction) Document
}

// TransactionsCollection - коллекция транзакций шлюза для отчёта.
// Делает ровно один поиск, запоминает результат и отдаёт не больше записей,
// чем размер страницы (по умолчанию TransactionMaximumCount). Не предназначена
// для конкурентного использования.
type TransactionsCollection struct {
	factory  EntityFactory
	searcher Searcher
	mapper   FilterProvider

	filters  []braintree.SearchNode
	pageSize *int
	curPage  int

	fetched bool
	items   []Document
	total   int
}

// NewTransactionsCollection создаёт пустую коллекцию без фильтров
func NewTransactionsCollection(factory EntityFactory, searcher Searcher, mapper FilterProvider) *TransactionsCollection {
	return &TransactionsCollection{
		factory:  factory,
		searcher: searcher,
		mapper:   mapper,
		curPage:  1,
	}
}

// AddFieldToFilter добавляет фильтр по полю и всегда возвращает саму коллекцию.
// field - имя поля или []string; фильтр по нескольким полям шлюз не поддерживает,
// такой вызов ничего не делает. Скалярное условие приводится к Condition{"eq": value}.
// Фильтры объединяются через И; фильтр, противоречащий уже добавленным
// (например, два разных eq по одному полю), отклоняется.
func (c *TransactionsCollection) AddFieldToFilter(field any, condition any) (*TransactionsCollection, error) {
	var name string
	switch f := field.(type) {
	case []string:
		return c, nil
	case string:
		name = f
	default:
		return c, &UnsupportedFilterError{Field: fmt.Sprint(field), Reason: "field must be a string"}
	}

	node, err := c.mapper.GetFilter(name, normalizeCondition(condition))
	if err != nil {
		return c, err
	}
	if node == nil {
		return c, nil
	}
	if _, err := braintree.Query(append(slices.Clone(c.filters), node)); err != nil {
		return c, &UnsupportedFilterError{Field: name, Reason: err.Error()}
	}
	c.filters = append(c.filters, node)
	return c, nil
}

func normalizeCondition(condition any) Condition {
	switch v := condition.(type) {
	case Condition:
		return v
	case map[string]any:
		return Condition(v)
	default:
		return Condition{"eq": v}
	}
}

// SetPageSize задаёт размер страницы; nil возвращает лимит по умолчанию.
// После первой материализации не влияет на результат.
func (c *TransactionsCollection) SetPageSize(size *int) *TransactionsCollection {
	c.pageSize = size
	return c
}

// SetCurPage задаёт номер страницы (с 1); значения меньше 1 трактуются как 1
func (c *TransactionsCollection) SetCurPage(page int) *TransactionsCollection {
	if page < 1 {
		page = 1
	}
	c.curPage = page
	return c
}

// Filters возвращает накопленные узлы поиска
func (c *TransactionsCollection) Filters() []braintree.SearchNode {
	return c.filters
}

// Items возвращает записи отчёта. Первый вызов выполняет поиск, следующие
// отдают запомненный результат. Ошибка поиска не запоминается.
func (c *TransactionsCollection) Items(ctx context.Context) ([]Document, error) {
	if c.fetched {
		return c.items, nil
	}

	txs, err := c.searcher.Search(ctx, c.filters)
	if err != nil {
		return nil, err
	}

	c.total = len(txs)
	c.items = c.materialize(txs)
	c.fetched = true
	return c.items, nil
}

// Size возвращает число сырых транзакций, найденных шлюзом, до применения лимита
func (c *TransactionsCollection) Size(ctx context.Context) (int, error) {
	if _, err := c.Items(ctx); err != nil {
		return 0, err
	}
	return c.total, nil
}

func (c *TransactionsCollection) materialize(txs []braintree.Transaction) []Document {
	items := make([]Document, 0)
	if len(txs) == 0 {
		return items
	}

	limit := c.limit()
	offset := (c.curPage - 1) * limit
	if offset >= len(txs) {
		return items
	}

	for _, tx := range txs[offset:] {
		if len(items) >= limit {
			break
		}
		items = append(items, c.factory.Create(TransactionItemType, tx))
	}
	return items
}

// limit - заданный размер страницы или TransactionMaximumCount, если он не задан
func (c *TransactionsCollection) limit() int {
	if c.pageSize != nil && *c.pageSize > 0 {
		return *c.pageSize
	}
	return TransactionMaximumCount
}
