package printer

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/O33ero/qfactor/factor"
)

// AttemptTablePrinter renders the attempt log of a finished search.
func AttemptTablePrinter(res *factor.Result) {
	tbl := New()
	for _, a := range res.Attempts {
		order := "*"
		if a.Order != 0 {
			order = fmt.Sprint(a.Order)
		}
		factorCell := ""
		if a.Factor != 0 {
			factorCell = fmt.Sprint(a.Factor)
		}
		tbl.AddRow(a.Index, a.Base, order, string(a.Outcome), factorCell)
	}
	tbl.Print()
}

func New() table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Attempt", "Base", "Order", "Outcome", "Factor")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}
