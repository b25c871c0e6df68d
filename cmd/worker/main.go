package main

import (
	"context"
	"log"
	"os"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/utils"
)

const usage = `usage:
  worker validate <path> [--json]
  worker improve <path> [outDir] [targetScore] [maxIterations]
  worker dot <path> <out.dot>
  worker prune [outDir] [retentionDays]`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := middleware.WithRequestID(context.Background(), "cli-"+utils.ShortID())

	args := os.Args[2:]
	switch os.Args[1] {
	case "validate":
		err = runValidate(ctx, cfg, args, os.Stdout)
	case "improve":
		err = runImprove(ctx, cfg, args, os.Stdout)
	case "dot":
		err = runDOT(args)
	case "prune":
		err = runPrune(cfg, args, os.Stdout)
	default:
		log.Fatalf("unknown command: %s\n%s", os.Args[1], usage)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}
