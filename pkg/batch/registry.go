package batch

import (
	"fmt"
	"sort"

	"github.com/c9s/indicatorkit/pkg/config"
	"github.com/c9s/indicatorkit/pkg/types"
)

// Evaluator computes one indicator over the bars with the parameters of the job config
// and returns the result columns and rows.
type Evaluator func(ks []types.Candlestick, conf config.IndicatorConfig) (columns []string, rows []Row, err error)

var LoadedEvaluators = make(map[string]Evaluator)

func RegisterEvaluator(id string, e Evaluator) {
	if _, ok := LoadedEvaluators[id]; ok {
		panic(fmt.Errorf("evaluator %s is already registered", id))
	}

	LoadedEvaluators[id] = e
}

// RegisteredIDs returns the sorted ids of the registered evaluators
func RegisteredIDs() []string {
	ids := make([]string, 0, len(LoadedEvaluators))
	for id := range LoadedEvaluators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// UnknownIndicatorError is returned for a job whose id has no evaluator
type UnknownIndicatorError struct {
	ID string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator id: %s", e.ID)
}
