package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cfsim/internal/sched"
)

type algoSummary struct {
	name      string
	decisions int
	summary   sched.Summary
}

// renderSummary prints the per-task timing table for a single run.
func renderSummary(w io.Writer, sum sched.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Nice", "Arrival", "Burst", "Waiting", "Turnaround", "Completion"})
	for _, tt := range sum.Tasks {
		table.Append([]string{
			strconv.FormatUint(uint64(tt.ID), 10),
			strconv.Itoa(tt.Nice),
			strconv.FormatInt(tt.Arrival, 10),
			strconv.FormatInt(tt.Burst, 10),
			strconv.FormatInt(tt.Waiting, 10),
			strconv.FormatInt(tt.Turnaround, 10),
			strconv.FormatInt(tt.Completion, 10),
		})
	}
	table.SetFooter([]string{
		"", "", "", "AVERAGE",
		fmt.Sprintf("%.2f", sum.AvgWaiting),
		fmt.Sprintf("%.2f", sum.AvgTurnaround),
		"",
	})
	table.Render()

	fmt.Fprintf(w, "Waiting stddev: %.3f, makespan: %d\n", sum.WaitingStdDev, sum.Makespan)
}

// renderComparison prints one row per algorithm over the same workload.
func renderComparison(w io.Writer, summaries []algoSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Decisions", "Avg Waiting", "Avg Turnaround", "Waiting StdDev", "Makespan"})
	for _, s := range summaries {
		table.Append([]string{
			s.name,
			strconv.Itoa(s.decisions),
			fmt.Sprintf("%.2f", s.summary.AvgWaiting),
			fmt.Sprintf("%.2f", s.summary.AvgTurnaround),
			fmt.Sprintf("%.3f", s.summary.WaitingStdDev),
			strconv.FormatInt(s.summary.Makespan, 10),
		})
	}
	table.Render()
}

// writeTrace dumps the decision trace as CSV, one row per slice.
func writeTrace(path string, events []sched.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"start", "end", "task_id", "granted", "vruntime_before", "vruntime_after", "outcome"})
	for _, ev := range events {
		w.Write([]string{
			strconv.FormatInt(ev.Start, 10),
			strconv.FormatInt(ev.End, 10),
			strconv.FormatUint(uint64(ev.ID), 10),
			strconv.FormatInt(ev.End-ev.Start, 10),
			fmt.Sprintf("%.4f", ev.VruntimeBefore),
			fmt.Sprintf("%.4f", ev.VruntimeAfter),
			ev.Outcome.String(),
		})
	}
	w.Flush()
	return w.Error()
}
