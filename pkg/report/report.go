// Package report renders search results for files, consoles and JSON consumers.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/engine/search"
	"lintang/routesearch/pkg/util"

	"github.com/goccy/go-json"
)

// WriteText writes the classic solution file:
//
//	Generated nodes: 2
//	Expanded nodes: 3
//	Execution time: 0:00:00.000021
//	Solution length: 1
//	Solution cost: 0:00:10
//	Solution: [1 → 3 (10.000000)]
func WriteText(w io.Writer, res *search.Result) error {
	bw := bufio.NewWriter(w)
	if !res.Found() {
		fmt.Fprint(bw, "No solution found.\n")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Generated nodes: %d\n", res.Generated)
	fmt.Fprintf(bw, "Expanded nodes: %d\n", res.Expanded)
	fmt.Fprintf(bw, "Execution time: %s\n", FormatSeconds(res.Elapsed.Seconds()))
	fmt.Fprintf(bw, "Solution length: %d\n", res.Length())
	fmt.Fprintf(bw, "Solution cost: %s\n", FormatSeconds(res.Cost()))

	parts := make([]string, 0, res.Length())
	for _, st := range res.Path.Steps() {
		parts = append(parts, fmt.Sprintf("%d → %d (%.6f)", st.From.ID, st.To.ID, st.Cost))
	}
	fmt.Fprintf(bw, "Solution: [%s]\n", strings.Join(parts, ", "))
	return bw.Flush()
}

// FormatSeconds H:MM:SS[.ffffff] with a "N day(s), " prefix past 24h, microsecond precision.
func FormatSeconds(seconds float64) string {
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return "inf"
	}
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	micros := int64(math.RoundToEven(seconds * 1e6))
	days := micros / (86400 * 1e6)
	micros -= days * 86400 * 1e6
	h := micros / (3600 * 1e6)
	micros -= h * 3600 * 1e6
	m := micros / (60 * 1e6)
	micros -= m * 60 * 1e6
	s := micros / 1e6
	micros -= s * 1e6

	var sb strings.Builder
	sb.WriteString(sign)
	if days > 0 {
		plural := "s"
		if days == 1 {
			plural = ""
		}
		fmt.Fprintf(&sb, "%d day%s, ", days, plural)
	}
	fmt.Fprintf(&sb, "%d:%02d:%02d", h, m, s)
	if micros > 0 {
		fmt.Fprintf(&sb, ".%06d", micros)
	}
	return sb.String()
}

type StepSummary struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Action string  `json:"action"`
	Cost   float64 `json:"cost"`
}

// Summary JSON friendly view of a result.
type Summary struct {
	Strategy  string        `json:"strategy"`
	RunID     string        `json:"run_id,omitempty"`
	Status    string        `json:"status"`
	Found     bool          `json:"found"`
	Generated int           `json:"generated_nodes"`
	Expanded  int           `json:"expanded_nodes"`
	ElapsedMs float64       `json:"elapsed_ms"`
	Length    int           `json:"solution_length"`
	Cost      float64       `json:"solution_cost"`
	Path      []int64       `json:"path"`
	Steps     []StepSummary `json:"steps"`
	Polyline  string        `json:"polyline,omitempty"`
}

func Summarize(res *search.Result) Summary {
	steps := make([]StepSummary, 0, res.Length())
	for _, st := range res.Path.Steps() {
		steps = append(steps, StepSummary{
			From:   st.From.ID,
			To:     st.To.ID,
			Action: st.Action.String(),
			Cost:   util.RoundFloat(st.Cost, 6),
		})
	}
	return Summary{
		Strategy:  res.Strategy,
		RunID:     res.RunID,
		Status:    res.Status.String(),
		Found:     res.Found(),
		Generated: res.Generated,
		Expanded:  res.Expanded,
		ElapsedMs: util.RoundFloat(float64(res.Elapsed.Microseconds())/1000.0, 3),
		Length:    res.Length(),
		Cost:      util.RoundFloat(res.Cost(), 6),
		Path:      res.Path.IDs(),
		Steps:     steps,
		Polyline:  datastructure.RenderPath(res.Path.States()),
	}
}

func WriteJSON(w io.Writer, results []*search.Result) error {
	summaries := make([]Summary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, Summarize(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}

// WriteTable one line per strategy, used by the comparison command.
func WriteTable(w io.Writer, results []*search.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-6s %-10s %10s %10s %8s %16s %14s\n", "alg", "status", "generated", "expanded", "length", "cost", "time")
	for _, r := range results {
		cost := "-"
		if r.Found() {
			cost = fmt.Sprintf("%.6f", r.Cost())
		}
		fmt.Fprintf(bw, "%-6s %-10s %10d %10d %8d %16s %14s\n", r.Strategy, r.Status, r.Generated, r.Expanded, r.Length(), cost, FormatSeconds(r.Elapsed.Seconds()))
	}
	return bw.Flush()
}
