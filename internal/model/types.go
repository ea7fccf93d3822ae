package model

import (
	"context"

	"github.com/passdesk/passdesk/internal/model1"
)

// ActionEvent reports a per-row action activation.
type ActionEvent[T any] struct {
	Action string
	Index  int
	Row    *model1.Row[T]
}

// TableListener represents a table controller listener.
type TableListener[T any] interface {
	// TableLoadData asks for a cold page to be populated.
	TableLoadData(PageRequest)

	// TablePageChanged notifies the displayed page was republished.
	TablePageChanged(model1.PaginatedData[T])

	// TableCheckboxUpdated notifies the selection aggregate was recomputed.
	TableCheckboxUpdated(bool)

	// TableSelectedItems reports the selected row count on the displayed page.
	TableSelectedItems(int)

	// TableFiltersApplied notifies a filter value changed.
	TableFiltersApplied(model1.FilterCriteria)

	// TableActionClicked notifies a row action was activated.
	TableActionClicked(ActionEvent[T])
}

// ColumnManager edits a copy of the table columns. done receives nil when the user cancels.
type ColumnManager interface {
	ManageColumns(cols model1.Columns, done func(model1.Columns))
}

// Source represents a countable, pageable data source.
type Source[T any] interface {
	// Count returns the number of records matching the criteria.
	Count(ctx context.Context, criteria model1.FilterCriteria) (int, error)

	// Page returns at most limit records matching the criteria, starting at offset.
	Page(ctx context.Context, criteria model1.FilterCriteria, offset, limit int) ([]T, error)
}
