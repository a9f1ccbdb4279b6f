// fuser_dump builds a small fusion IR from the command line and pretty-prints
// it: the tensor, the schedule applied to it, the transformation history and
// the final listing of values and expressions.
//
// The tensor is described by flags, the schedule by positional arguments
// applied in order:
//
//	fuser_dump -dims=8,x,64 split:2:4 reorder:0,1,3,2 computeat:2
//
// See parseOp for the accepted operations.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/fuser/fusion"
	"github.com/gomlx/fuser/types/xslices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagDims = xslices.Flag("dims", []int{8, 16}, "Comma-separated axis sizes of the tensor to schedule. "+
		"Use \"x\" for an axis whose size is only known when the kernel executes.", parseDim)
	flagDType      = flag.String("dtype", "float32", "Data type of the tensor elements, e.g. float32, float64, int32.")
	flagContiguous = flag.Bool("contiguous", false, "Attach memory contiguity information to the tensor, "+
		"marking every axis contiguous.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	ops, err := parseOps(flag.Args())
	if err != nil {
		klog.Errorf("Failed to parse schedule: %+v", err)
		klog.Errorf("See 'fuser_dump -help' for the accepted operations.")
		os.Exit(1)
	}
	err = exceptions.TryCatch[error](func() { dump(ops) })
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			return plainTableCellStyle(withHeader, row, col)
		})
}

// plainTableCellStyle styles one table cell. Rows added with Table.Row are
// 0-indexed, so when the table has a header it is row 0.
func plainTableCellStyle(withHeader bool, row, col int) (s lipgloss.Style) {
	if withHeader && row == 0 {
		s = headerRowStyle
		return
	}
	switch {
	case row%2 == 0:
		// Even row style.
		s = oddRowStyle
	default:
		// Odd row style
		s = evenRowStyle
	}
	if col == 0 {
		s = s.Align(lipgloss.Right)
	} else {
		s = s.Align(lipgloss.Left)
	}
	return
}

// newTensor creates the tensor described by the -dims, -dtype and -contiguous
// flags.
func newTensor(f *fusion.Fusion, dtype dtypes.DType) *fusion.Tensor {
	axes := xslices.Map(*flagDims, func(dim int) *fusion.IterDomain {
		if dim == symbolicDim {
			return fusion.NewIterDomain(fusion.NewSymbolicInt(f), fusion.ParallelTypeSerial, false)
		}
		return fusion.NewIterDomain(fusion.NewInt(f, dim), fusion.ParallelTypeSerial, false)
	})
	domain := fusion.NewTensorDomain(f, axes...)
	if !*flagContiguous {
		return fusion.NewTensor(f, dtype, domain)
	}
	return fusion.NewTensorWithContiguity(f, dtype, domain,
		fusion.NewTensorContiguity(xslices.SliceWithValue(len(axes), true)))
}

// applyTo applies the operation to the view, returning the resulting view.
// Compute-at binds the view to root, the untransformed view of the same
// tensor.
func (op scheduleOp) applyTo(view, root *fusion.TensorView) *fusion.TensorView {
	switch op.kind {
	case opSplit:
		return view.Split(op.axis, op.factor)
	case opMerge:
		return view.Merge(op.axis)
	case opReorder:
		pos2axis := make(map[int]int, len(op.perm))
		for pos, axis := range op.perm {
			pos2axis[pos] = axis
		}
		return view.Reorder(pos2axis)
	case opComputeAt:
		return view.ComputeAt(root, op.pos)
	}
	return view
}

func dump(ops []scheduleOp) {
	f := fusion.New()
	dtype := must.M1(dtypes.DTypeString(*flagDType))
	tensor := newTensor(f, dtype)
	root := fusion.ViewOf(tensor)

	fmt.Println(titleStyle.Render("Tensor"))
	table := newPlainTable(false)
	table.Row("tensor", tensor.String())
	table.Row("dtype", dtype.String())
	table.Row("rank", strconv.Itoa(tensor.Domain().Rank()))
	table.Row("elements", constExtent(tensor.Domain()))
	table.Row("contiguous", strconv.FormatBool(*flagContiguous))
	fmt.Println(table.Render())

	view := root
	if len(ops) > 0 {
		fmt.Println(titleStyle.Render("Schedule"))
		table = newPlainTable(true)
		table.Row("Step", "Operation", "View")
		for ii, op := range ops {
			view = op.applyTo(view, root)
			table.Row(strconv.Itoa(ii+1), op.String(), view.String())
		}
		fmt.Println(table.Render())

		if history := fusion.TransformHistory(view.Domain()); len(history) > 0 {
			fmt.Println(titleStyle.Render("Transform History"))
			table = newPlainTable(true)
			table.Row("Id", "Record")
			for _, expr := range history {
				table.Row(fmt.Sprintf("#%d", expr.Id()), expr.String())
			}
			fmt.Println(table.Render())
		}
	}

	fmt.Println(titleStyle.Render("Fusion IR"))
	table = newPlainTable(true)
	table.Row("Id", "Kind", "Value")
	for _, v := range f.Vals() {
		table.Row(fmt.Sprintf("#%d", v.Id()), v.Type().String(), v.String())
	}
	fmt.Println(table.Render())
	if f.NumExprs() > 0 {
		table = newPlainTable(true)
		table.Row("Id", "Expression")
		for _, e := range f.Exprs() {
			table.Row(fmt.Sprintf("#%d", e.Id()), e.String())
		}
		fmt.Println(table.Render())
	}
}

// constExtent returns the total number of elements if every axis size is a
// compile-time constant, or "?" if any is symbolic.
func constExtent(td *fusion.TensorDomain) string {
	total := 1
	for axis := 0; axis < td.Rank(); axis++ {
		size := td.Axis(axis).Size()
		if size.IsSymbolic() {
			return "?"
		}
		total *= size.Value()
	}
	return humanize.Comma(int64(total))
}
