// Command simulate runs synthetic onboarding assessments against a
// local database and prints the resulting belief states.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/P-Pranath/Unora-app/internal/simulation"
	"github.com/P-Pranath/Unora-app/internal/store"
)

func main() {
	var (
		dbPath  = flag.String("db", "simulation.db", "sqlite database path")
		users   = flag.Int("users", 10, "number of simulated users")
		workers = flag.Int("workers", 4, "concurrent workers")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := store.NewSQLite(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	reports := simulation.Run(context.Background(), db, logger, *users, *workers)

	failures := 0
	for _, r := range reports {
		if r.Err != nil {
			failures++
			fmt.Printf("%s  FAILED: %v\n", r.UserID, r.Err)
			continue
		}
		fmt.Printf("%s  answered=%d skipped=%d confidence=%.3f\n",
			r.UserID, r.QuestionsAnswered, r.Skipped, r.OverallConfidence)
		fmt.Printf("  asked: %v\n", r.AskedQuestionIDs)
		fmt.Printf("  summary: %s\n", r.Summary)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d runs failed\n", failures, len(reports))
		os.Exit(1)
	}
}
