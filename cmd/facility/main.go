package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"lintang/routesearch/pkg/engine/localsearch"
	"lintang/routesearch/pkg/logging"
	"lintang/routesearch/pkg/report"
	"lintang/routesearch/pkg/routedata"
)

var (
	mapFile  = flag.String("f", "", "route document dengan candidates dan number_stations")
	alg      = flag.String("alg", localsearch.GeneticAlgorithmName, "rs, hc, ils, ga, sa atau all")
	stations = flag.Int("stations", 0, "jumlah station, default number_stations dari document")
	seed     = flag.Uint64("seed", 1, "seed random generator")
	network  = flag.Bool("network", false, "travel time dari shortest path road network, bukan garis lurus")
	workers  = flag.Int("workers", 4, "jumlah worker untuk travel time matrix")
	output   = flag.String("o", "", "output file, default stdout")
	logLevel = flag.String("log-level", "info", "log level")
	logJSON  = flag.Bool("log-json", false, "log dalam format json")
)

func main() {
	flag.Parse()
	logger, err := logging.New(*logLevel, *logJSON)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}
	if *mapFile == "" {
		logger.Fatal().Msg("-f route document is required")
	}

	ds, err := routedata.Load(*mapFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *mapFile).Msg("load route document")
	}

	candidates := make([]localsearch.Candidate, 0, len(ds.Doc.Candidates))
	for _, c := range ds.Doc.Candidates {
		candidates = append(candidates, localsearch.Candidate{ID: c.ID, Population: c.Population})
	}
	k := *stations
	if k == 0 {
		k = ds.Doc.NumberStations
	}
	opts := []localsearch.Option{}
	if *network {
		opts = append(opts, localsearch.WithNetworkTravelTime(*workers))
	}
	p, err := localsearch.NewProblem(ds.Graph, candidates, k, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("build facility location problem")
	}
	logger.Info().Int("candidates", p.NumCandidates()).Int("stations", k).Bool("network", *network).Msg("facility location problem ready")

	names := []string{*alg}
	if *alg == "all" {
		names = localsearch.SolverNames()
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Fatal().Err(err).Msg("create output file")
		}
		defer f.Close()
		out = f
	}

	for _, name := range names {
		solver, err := localsearch.NewSolver(name, *seed)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid algorithm")
		}
		sol := solver.Solve(p)
		logger.Info().Str("algorithm", sol.Algorithm).Float64("fitness", sol.Fitness).Dur("elapsed", sol.Elapsed).Msg("solver finished")

		fmt.Fprintf(out, "Algorithm: %s\n", sol.Algorithm)
		fmt.Fprintf(out, "Best configuration: %s\n", sol.Configuration)
		fmt.Fprintf(out, "Stations: %v\n", sol.Stations)
		fmt.Fprintf(out, "Fitness: %.6f (%s)\n", sol.Fitness, report.FormatSeconds(sol.Fitness))
		fmt.Fprintf(out, "Execution time: %s\n\n", report.FormatSeconds(sol.Elapsed.Seconds()))
	}
	logger.Debug().Int("evaluations", p.Evaluations()).Msg("fitness evaluations")
}
