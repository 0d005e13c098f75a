package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// NetStats prints the transport metrics collected during this run.
func (a *App) NetStats(ctx context.Context) error {
	if a.metrics == nil {
		fmt.Fprintln(a.out, "Metrics are not enabled")
		return nil
	}
	families, err := a.metrics.Gather()
	if err != nil {
		return a.fail(ctx, "Could not gather metrics", err)
	}

	var rows []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)

			var value string
			switch {
			case m.GetCounter() != nil:
				value = fmt.Sprintf("%g", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				value = fmt.Sprintf("%g", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%.3fs", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s", mf.GetName(), strings.Join(labels, ","), value))
		}
	}
	a.printRows("METRIC\tLABELS\tVALUE", rows)
	return nil
}
