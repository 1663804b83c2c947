package download

import (
	"context"

	"github.com/NathanPERIER/plexmedia-downloader/media"
)

// Run plans, prints and executes every node in order.
type Run struct {
	Planner   *Planner
	Executor  *Executor
	Printer   ManifestPrinter
	Reporter  Reporter
	ServerURI string
}

// Do processes nodes sequentially and returns the combined result.
func (r *Run) Do(ctx context.Context, nodes []media.Node) (Result, error) {
	var total Result

	for _, node := range nodes {
		r.Reporter.Found(node.Name())

		plan, err := r.Planner.Plan(node, r.ServerURI)
		if err != nil {
			return total, err
		}

		if err := r.Printer.Print(plan); err != nil {
			return total, err
		}

		result, err := r.Executor.Execute(ctx, plan)
		total.add(result)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
