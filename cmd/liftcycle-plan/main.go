package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dbPath := flag.String("db", "", "SQLite database path (default ~/.liftcycle/cycles.db)")
	templateID := flag.String("template", "", "template ID to instantiate")
	list := flag.Bool("list", false, "list templates and exit")
	bench := flag.Float64("bench", 0, "bench press max")
	squat := flag.Float64("squat", 0, "squat max")
	deadlift := flag.Float64("deadlift", 0, "deadlift max")
	ohp := flag.Float64("ohp", 0, "overhead press max")
	fromOneRM := flag.Bool("one-rep-max", false, "treat the maxes as one-rep maxes and derive training maxes at 90%")
	nextCycle := flag.Bool("next-cycle", false, "add the standard next-cycle increase to the training maxes")
	increment := flag.Float64("increment", program.DefaultIncrement, "smallest load step")
	start := flag.String("start", "", "cycle start date YYYY-MM-DD (default today)")
	dryRun := flag.Bool("dry-run", false, "print the program without saving it")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftcycle-plan", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	catalog := program.NewCatalog(*increment)

	if *list {
		for _, t := range catalog.Templates() {
			fmt.Printf("%-12s %-24s %s\n", t.ID, t.Name, t.DurationLabel)
		}
		return
	}

	if *templateID == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftcycle-plan -template <id> [-bench N -squat N -deadlift N -ohp N] [-one-rep-max] [-next-cycle] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	tmpl, err := catalog.Template(*templateID)
	if err != nil {
		log.Error("unknown template", "template", *templateID, "error", err)
		os.Exit(1)
	}

	var tm *models.TrainingMaxes
	if tmpl.RequiresTrainingMaxes {
		maxes, err := trainingMaxes(models.TrainingMaxes{Bench: *bench, Squat: *squat, Deadlift: *deadlift, OHP: *ohp}, *fromOneRM, *increment)
		if err != nil {
			log.Error("invalid maxes", "error", err)
			os.Exit(1)
		}
		if *nextCycle {
			maxes = maxes.NextCycle()
		}
		log.Info("training maxes", "bench", maxes.Bench, "squat", maxes.Squat, "deadlift", maxes.Deadlift, "ohp", maxes.OHP)
		tm = &maxes
	}

	startDate := time.Now()
	if *start != "" {
		if startDate, err = time.Parse("2006-01-02", *start); err != nil {
			log.Error("invalid start date", "start", *start, "error", err)
			os.Exit(1)
		}
	}

	cycle, err := catalog.NewCycle(tmpl.ID, tm, startDate)
	if err != nil {
		log.Error("building cycle failed", "template", tmpl.ID, "error", err)
		os.Exit(1)
	}

	if !*dryRun {
		path := *dbPath
		if path == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				log.Error("failed to get home directory", "error", err)
				os.Exit(1)
			}
			path = filepath.Join(homeDir, ".liftcycle", "cycles.db")
		}
		store, err := storage.OpenLite(path)
		if err != nil {
			log.Error("failed to open database", "path", path, "error", err)
			os.Exit(1)
		}
		defer store.Close()

		if err := store.InsertCycle(context.Background(), cycle); err != nil {
			log.Error("saving cycle failed", "error", err)
			os.Exit(1)
		}
		log.Info("cycle saved", "cycle_id", cycle.ID, "path", path, "days", len(cycle.TrainingDays))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cycle); err != nil {
		log.Error("encoding cycle failed", "error", err)
		os.Exit(1)
	}
}

// trainingMaxes validates the supplied maxes, converting one-rep maxes to
// training maxes when asked.
func trainingMaxes(in models.TrainingMaxes, fromOneRM bool, increment float64) (models.TrainingMaxes, error) {
	if err := in.Validate(); err != nil {
		return models.TrainingMaxes{}, err
	}
	if !fromOneRM {
		return in, nil
	}
	var out models.TrainingMaxes
	var err error
	if out.Bench, err = program.TrainingMaxFromOneRepMax(in.Bench, increment); err != nil {
		return out, err
	}
	if out.Squat, err = program.TrainingMaxFromOneRepMax(in.Squat, increment); err != nil {
		return out, err
	}
	if out.Deadlift, err = program.TrainingMaxFromOneRepMax(in.Deadlift, increment); err != nil {
		return out, err
	}
	if out.OHP, err = program.TrainingMaxFromOneRepMax(in.OHP, increment); err != nil {
		return out, err
	}
	return out, nil
}
