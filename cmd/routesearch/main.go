package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"lintang/routesearch/pkg/engine/heuristics"
	"lintang/routesearch/pkg/engine/search"
	"lintang/routesearch/pkg/logging"
	"lintang/routesearch/pkg/problem"
	"lintang/routesearch/pkg/report"
	"lintang/routesearch/pkg/routedata"

	"github.com/google/uuid"
)

const useDocument = -1

var (
	mapFile   = flag.String("f", "", "route document (.json atau .json.zst)")
	algorithm = flag.String("alg", search.NameAStar, "search strategy: bfs, dfs, ucs, astar, gbfs")
	heuristic = flag.String("heuristic", heuristics.NameGeodesic, "heuristic untuk astar/gbfs: zero, manhattan, euclidean, geodesic")
	avgSpeed  = flag.Float64("speed", heuristics.DefaultAverageSpeed, "average speed heuristic euclidean/geodesic")
	cost      = flag.String("cost", problem.CostTime, "step cost: time atau distance")
	from      = flag.Int64("from", useDocument, "initial intersection, default dari document")
	to        = flag.Int64("to", useDocument, "goal intersection, default dari document")
	compare   = flag.String("compare", "", "bandingkan beberapa strategy, comma separated atau 'all'")
	workers   = flag.Int("workers", 4, "jumlah worker untuk -compare")
	format    = flag.String("format", "text", "output format: text atau json")
	output    = flag.String("o", "", "output file, default stdout")
	logLevel  = flag.String("log-level", "info", "log level")
	logJSON   = flag.Bool("log-json", false, "log dalam format json")
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
	logger.Info().Int("intersections", ds.Graph.NumIntersections()).Int("segments", ds.Graph.NumSegments()).Msg("route document loaded")

	costOpt, err := problem.CostOption(*cost)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid cost")
	}
	p, err := ds.Problem(costOpt)
	if err != nil {
		logger.Fatal().Err(err).Msg("build problem")
	}
	if *from != useDocument {
		if p, err = p.ForInitial(*from); err != nil {
			logger.Fatal().Err(err).Msg("invalid -from")
		}
	}
	if *to != useDocument {
		if p, err = p.ForGoal(*to); err != nil {
			logger.Fatal().Err(err).Msg("invalid -to")
		}
	}

	hf, err := heuristics.NewFactory(*heuristic, *avgSpeed)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid heuristic")
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

	if *compare != "" {
		names := search.Names()
		if *compare != "all" {
			names = strings.Split(*compare, ",")
		}
		results, err := search.Compare(p, names, hf, *workers)
		if err != nil {
			logger.Fatal().Err(err).Msg("compare strategies")
		}
		for _, res := range results {
			logger.Debug().Str("run_id", res.RunID).Str("strategy", res.Strategy).Str("status", res.Status.String()).Msg("strategy finished")
		}
		if *format == "json" {
			err = report.WriteJSON(out, results)
		} else {
			err = report.WriteTable(out, results)
		}
		if err != nil {
			logger.Fatal().Err(err).Msg("write report")
		}
		return
	}

	strategy, err := search.New(*algorithm, hf(p.Goal()))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid strategy")
	}
	res := strategy.Search(p)
	res.RunID = uuid.NewString()
	logger.Info().
		Str("run_id", res.RunID).
		Str("strategy", res.Strategy).
		Int64("from", p.Initial().ID).
		Int64("to", p.Goal().ID).
		Str("status", res.Status.String()).
		Int("generated", res.Generated).
		Int("expanded", res.Expanded).
		Dur("elapsed", res.Elapsed).
		Msg("search finished")

	if *format == "json" {
		err = report.WriteJSON(out, []*search.Result{res})
	} else {
		err = report.WriteText(out, res)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}
}
