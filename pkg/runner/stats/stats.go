package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Stats prints a summary of the whole task collection.
type Stats struct {
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: n.Persistence}
	st, err := svc.Stats(ctx, time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Stats")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("total", st.Total)
	tbl.AddRow("open", st.Open)
	tbl.AddRow("done", st.Done)
	tbl.AddRow("overdue", st.Overdue)
	tbl.AddRow("due today", st.DueToday)
	tbl.AddRow("undated", st.Undated)
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(st.ByCategory) > 0 {
		pp.Title("By category")
		names := make([]string, 0, len(st.ByCategory))
		for name := range st.ByCategory {
			names = append(names, name)
		}
		sort.Strings(names)

		tbl = uitable.New()
		tbl.Separator = "  "
		for _, name := range names {
			tbl.AddRow(name, st.ByCategory[name])
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	return nil
}
