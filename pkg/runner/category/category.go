package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Category lists, creates or removes categories.
type Category struct {
	Name   string
	Color  string
	Remove bool

	Persistence store.Persistence
}

func (n *Category) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not manage categories, no persistence")
	}

	switch {
	case n.Remove:
		return n.Persistence.DeleteCategory(n.Name)
	case n.Name != "":
		return n.Persistence.StoreCategory(task.Category{Name: n.Name, Color: n.Color})
	}

	cats := n.Persistence.Categories(ctx)
	if len(cats) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("NAME", "COLOR")
	for _, c := range cats {
		tbl.AddRow(c.Name, c.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
