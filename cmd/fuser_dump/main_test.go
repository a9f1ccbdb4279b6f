package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/fuser/fusion"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

// The usage example in the package doc (and README) must be a legal schedule
// for the (8, x, 64) tensor it is shown with.
func TestUsageExampleSchedule(t *testing.T) {
	ops, err := parseOps([]string{"split:2:4", "reorder:0,1,3,2", "computeat:2"})
	require.NoError(t, err)

	f := fusion.New()
	axes := []*fusion.IterDomain{
		fusion.NewIterDomain(fusion.NewInt(f, 8), fusion.ParallelTypeSerial, false),
		fusion.NewIterDomain(fusion.NewSymbolicInt(f), fusion.ParallelTypeSerial, false),
		fusion.NewIterDomain(fusion.NewInt(f, 64), fusion.ParallelTypeSerial, false),
	}
	tensor := fusion.NewTensor(f, dtypes.Float32, fusion.NewTensorDomain(f, axes...))
	root := fusion.ViewOf(tensor)

	view := root
	require.NotPanics(t, func() {
		for _, op := range ops {
			view = op.applyTo(view, root)
		}
	})

	// The split tiles the last axis into 16x4 and the reorder swaps the tiles,
	// leaving the first two axes untouched, so computing at position 2 is
	// legal.
	require.Equal(t, 4, view.Rank())
	d := view.Domain()
	require.Equal(t, 8, d.Axis(0).Size().Value())
	require.True(t, d.Axis(1).Size().IsSymbolic())
	require.Equal(t, 4, d.Axis(2).Size().Value())
	require.Equal(t, 16, d.Axis(3).Size().Value())
	require.Same(t, root, view.ComputeAtView())
	require.Equal(t, 2, view.ComputeAtAxis())
}

func TestPlainTableCellStyle(t *testing.T) {
	// Rows added with Table.Row are 0-indexed, so the header row is row 0.
	header := plainTableCellStyle(true, 0, 0)
	require.True(t, header.GetReverse())
	require.Equal(t, lipgloss.Center, header.GetAlignHorizontal())
	require.False(t, plainTableCellStyle(true, 1, 0).GetReverse())
	require.False(t, plainTableCellStyle(false, 0, 0).GetReverse())

	// Data cells right-align the first column and left-align the others.
	require.Equal(t, lipgloss.Right, plainTableCellStyle(true, 1, 0).GetAlignHorizontal())
	require.Equal(t, lipgloss.Left, plainTableCellStyle(true, 2, 1).GetAlignHorizontal())
}
