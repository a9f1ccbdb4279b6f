package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gomlx/fuser/types/xslices"
)

// symbolicDim marks an axis of -dims whose size is only known at kernel
// execution time.
const symbolicDim = -1

// parseDim parses one entry of the -dims flag: a positive integer, or "x"
// (also "?") for a symbolic size.
func parseDim(s string) (int, error) {
	if s == "x" || s == "?" {
		return symbolicDim, nil
	}
	dim, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid axis size %q", s)
	}
	if dim <= 0 {
		return 0, errors.Errorf("axis sizes must be positive, got %d", dim)
	}
	return dim, nil
}

type opKind int

const (
	opInvalid opKind = iota
	opSplit
	opMerge
	opReorder
	opComputeAt
)

// scheduleOp is one scheduling operation parsed from the command line.
type scheduleOp struct {
	kind   opKind
	axis   int   // opSplit and opMerge.
	factor int   // opSplit.
	perm   []int // opReorder: perm[newPos] is the axis moved there.
	pos    int   // opComputeAt.
}

// String returns the operation in the same format it is parsed from.
func (op scheduleOp) String() string {
	switch op.kind {
	case opSplit:
		return fmt.Sprintf("split:%d:%d", op.axis, op.factor)
	case opMerge:
		return fmt.Sprintf("merge:%d", op.axis)
	case opReorder:
		return fmt.Sprintf("reorder:%s", strings.Join(xslices.Map(op.perm, strconv.Itoa), ","))
	case opComputeAt:
		return fmt.Sprintf("computeat:%d", op.pos)
	}
	return "invalid"
}

// parseOps parses the positional command line arguments into the schedule to
// apply, in order.
func parseOps(args []string) ([]scheduleOp, error) {
	ops := make([]scheduleOp, 0, len(args))
	for _, arg := range args {
		op, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// parseOp parses one scheduling operation:
//
//	split:<axis>:<factor>     e.g. split:0:4
//	merge:<axis>              e.g. merge:1
//	reorder:<axis0>,<axis1>,… e.g. reorder:2,1,0
//	computeat:<position>      e.g. computeat:1
//
// Axes may be negative, counting from the end.
func parseOp(arg string) (op scheduleOp, err error) {
	name, params, _ := strings.Cut(arg, ":")
	switch name {
	case "split":
		op.kind = opSplit
		axisStr, factorStr, found := strings.Cut(params, ":")
		if !found {
			return op, errors.Errorf("operation %q requires an axis and a factor, like \"split:0:4\"", arg)
		}
		if op.axis, err = strconv.Atoi(axisStr); err != nil {
			return op, errors.Wrapf(err, "invalid axis in operation %q", arg)
		}
		if op.factor, err = strconv.Atoi(factorStr); err != nil {
			return op, errors.Wrapf(err, "invalid factor in operation %q", arg)
		}
	case "merge":
		op.kind = opMerge
		if op.axis, err = strconv.Atoi(params); err != nil {
			return op, errors.Wrapf(err, "invalid axis in operation %q", arg)
		}
	case "reorder":
		op.kind = opReorder
		if params == "" {
			return op, errors.Errorf("operation %q requires a permutation, like \"reorder:2,1,0\"", arg)
		}
		for _, axisStr := range strings.Split(params, ",") {
			axis, axisErr := strconv.Atoi(axisStr)
			if axisErr != nil {
				return op, errors.Wrapf(axisErr, "invalid axis %q in operation %q", axisStr, arg)
			}
			op.perm = append(op.perm, axis)
		}
	case "computeat":
		op.kind = opComputeAt
		if op.pos, err = strconv.Atoi(params); err != nil {
			return op, errors.Wrapf(err, "invalid position in operation %q", arg)
		}
	default:
		return op, errors.Errorf("unknown operation %q, valid operations are split, merge, reorder and computeat", name)
	}
	return op, nil
}
