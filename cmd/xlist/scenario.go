package main

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/xlog"
)

const scenarioCtxKey = "scenario"

// scenarioList is the part of both list variants the scenario drives.
type scenarioList interface {
	Add(v int64)
	Insert(v, index int64) error
	Swap(i, j int64) error
	Len() int64
	Values() ([]int64, error)
	Last() (int64, error)
}

type singlyScenarioList struct {
	list.SinglyLinkedList[int64]
}

func (l singlyScenarioList) Values() ([]int64, error) {
	values := make([]int64, 0, l.Len())
	for i := int64(0); i < l.Len(); i++ {
		v, err := l.Get(i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (l singlyScenarioList) Last() (int64, error) {
	return l.GetLast()
}

type doublyScenarioList struct {
	list.DoublyLinkedList[int64]
}

func (l doublyScenarioList) Add(v int64) {
	l.DoublyLinkedList.Add(v)
}

func (l doublyScenarioList) Insert(v, index int64) error {
	_, err := l.DoublyLinkedList.Insert(v, index)
	return err
}

func (l doublyScenarioList) Values() ([]int64, error) {
	values := make([]int64, 0, l.Len())
	for i := int64(0); i < l.Len(); i++ {
		n, err := l.Get(i)
		if err != nil {
			return nil, err
		}
		values = append(values, n.Value())
	}
	return values, nil
}

func (l doublyScenarioList) Last() (int64, error) {
	n, err := l.GetLast()
	if err != nil {
		return 0, err
	}
	return n.Value(), nil
}

type scenarioStep struct {
	name     string
	run      func(l scenarioList) error
	expected []int64
}

var (
	scenarioValues = lo.Map(lo.Range(5), func(i int, _ int) int64 { return int64(i + 1) })
	scenarioSteps  = []scenarioStep{
		{
			name: "add 1..5",
			run: func(l scenarioList) error {
				lo.ForEach(scenarioValues, func(v int64, _ int) { l.Add(v) })
				return nil
			},
			expected: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "insert 999 at 0",
			run: func(l scenarioList) error {
				return l.Insert(999, 0)
			},
			expected: []int64{999, 1, 2, 3, 4, 5},
		},
		{
			name: "swap 5 and 2",
			run: func(l scenarioList) error {
				return l.Swap(5, 2)
			},
			expected: []int64{999, 1, 5, 3, 4, 2},
		},
	}
	scenarioExpectedLast = int64(2)
)

func checkScenarioValues(l scenarioList, expected []int64) error {
	values, err := l.Values()
	if err != nil {
		return err
	}
	mismatched := int64(len(expected)) != l.Len() || len(values) != len(expected)
	for i := 0; !mismatched && i < len(expected); i++ {
		mismatched = values[i] != expected[i]
	}
	if mismatched {
		return infra.NewErrorStack(fmt.Sprintf("expected values %v, got %v", expected, values))
	}
	return nil
}

// runScenario replays the steps on a fresh list. A failed step stops
// the replay of that list, the error is logged and returned.
func runScenario(ctx context.Context, logger xlog.XLogger, name string, l scenarioList) error {
	ctx = xlog.ContextWithField(ctx, scenarioCtxKey, name)
	for _, step := range scenarioSteps {
		if err := ctx.Err(); err != nil {
			return infra.WrapErrorStackWithMessage(err, name)
		}
		if err := step.run(l); err != nil {
			logger.ErrorStackContext(ctx, err, "step failed", zap.String("step", step.name))
			return err
		}
		if err := checkScenarioValues(l, step.expected); err != nil {
			logger.ErrorStackContext(ctx, err, "unexpected list", zap.String("step", step.name))
			return err
		}
		values, _ := l.Values()
		logger.InfoContext(ctx, step.name,
			zap.Int64("len", l.Len()),
			zap.Int64s("values", values),
		)
	}

	last, err := l.Last()
	if err != nil {
		logger.ErrorStackContext(ctx, err, "get last failed")
		return err
	}
	if last != scenarioExpectedLast {
		err = infra.NewErrorStack(fmt.Sprintf("expected last %d, got %d", scenarioExpectedLast, last))
		logger.ErrorStackContext(ctx, err, "unexpected last")
		return err
	}
	logger.InfoContext(ctx, "get last", zap.Int64("value", last))
	return nil
}

type scenarioFactory struct {
	name    string
	newList func(opts ...list.LinkedListOption) scenarioList
}

var scenarioFactories = []scenarioFactory{
	{
		name: "singly",
		newList: func(opts ...list.LinkedListOption) scenarioList {
			return singlyScenarioList{list.NewSinglyLinkedList[int64](opts...)}
		},
	},
	{
		name: "doubly",
		newList: func(opts ...list.LinkedListOption) scenarioList {
			return doublyScenarioList{list.NewDoublyLinkedList[int64](opts...)}
		},
	},
}

// runScenarios replays the scenario repeat times on every variant and
// aggregates the failures of all of them.
func runScenarios(ctx context.Context, logger xlog.XLogger, repeat int, withStats bool) error {
	var merr error
	for _, f := range scenarioFactories {
		var opts []list.LinkedListOption
		if withStats {
			opts = append(opts, list.WithLinkedListStats(f.name))
		}
		for i := 0; i < repeat; i++ {
			merr = multierr.Append(merr, runScenario(ctx, logger, f.name, f.newList(opts...)))
		}
	}
	return merr
}
