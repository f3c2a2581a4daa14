package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"lintang/routesearch/pkg/logging"
	"lintang/routesearch/pkg/osmparser"
	"lintang/routesearch/pkg/routedata"
)

const useDefault = -1

var (
	mapFile   = flag.String("f", "solo_jogja.osm.pbf", "openstreeetmap file buat road network graphnya")
	output    = flag.String("o", "map.json.zst", "output route document (.json atau .json.zst)")
	initial   = flag.Int64("initial", useDefault, "initial intersection, default intersection id terkecil")
	final     = flag.Int64("final", useDefault, "final intersection, default intersection id terbesar")
	statsFile = flag.String("stats", "", "tulis jumlah way per road type ke csv")
	progress  = flag.Bool("progress", true, "tampilkan progress bar")
	logLevel  = flag.String("log-level", "info", "log level")
	logJSON   = flag.Bool("log-json", false, "log dalam format json")
)

func main() {
	flag.Parse()
	logger, err := logging.New(*logLevel, *logJSON)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f, err := os.Open(*mapFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("open osm file")
	}
	defer f.Close()

	parser := osmparser.NewOSMParser(logger, *progress)
	doc, err := parser.Parse(ctx, f)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse osm file")
	}
	doc.Address = *mapFile
	if *initial != useDefault {
		doc.Initial = initial
	}
	if *final != useDefault {
		doc.Final = final
	}
	if err := routedata.Validate(doc); err != nil {
		logger.Fatal().Err(err).Msg("imported road network is not a valid route document")
	}
	if _, err := routedata.NewDataset(doc); err != nil {
		logger.Fatal().Err(err).Msg("imported road network is inconsistent")
	}

	if err := routedata.Write(*output, doc); err != nil {
		logger.Fatal().Err(err).Msg("write route document")
	}
	logger.Info().Str("output", *output).Int("intersections", len(doc.Intersections)).Int("segments", len(doc.Segments)).Msg("route document written")

	if *statsFile != "" {
		sf, err := os.Create(*statsFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("create stats file")
		}
		defer sf.Close()
		if err := parser.WriteWayTypeToCsv(sf); err != nil {
			logger.Fatal().Err(err).Msg("write stats file")
		}
	}
}
