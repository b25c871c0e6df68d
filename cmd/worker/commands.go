package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/report"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/service"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
)

func newService(cfg *config.Config, outDir string) *service.Service {
	if outDir == "" {
		outDir = cfg.Compliance.OutDir
	}
	return service.New(service.Options{
		OutDir:        outDir,
		DotBin:        cfg.Compliance.DotBin,
		RenderSVG:     true,
		TargetScore:   cfg.Compliance.TargetScore,
		MaxIterations: cfg.Compliance.MaxIterations,
	}, service.Deps{})
}

// runValidate prints the compliance report of one file, as text or with --json.
func runValidate(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: validate <path> [--json]")
	}
	in, err := service.LoadFile(args[0])
	if err != nil {
		return err
	}
	res, err := newService(cfg, "").Analyze(ctx, in)
	if err != nil {
		return err
	}

	if len(args) > 1 && args[1] == "--json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Report)
	}
	_, err = io.WriteString(w, report.Text(res.Report))
	return err
}

func runImprove(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: improve <path> [outDir] [targetScore] [maxIterations]")
	}
	in, err := service.LoadFile(args[0])
	if err != nil {
		return err
	}

	req := service.ImproveInput{Input: in}
	outDir := ""
	if len(args) > 1 {
		outDir = args[1]
	}
	if len(args) > 2 {
		if req.TargetScore, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("targetScore: %w", err)
		}
	}
	if len(args) > 3 {
		if req.MaxIterations, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("maxIterations: %w", err)
		}
	}

	res, err := newService(cfg, outDir).Improve(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprint(w, res.Summary)
	fmt.Fprintf(w, "Wrote: %s\n", res.Version.ProcessPath)
	fmt.Fprintf(w, "Wrote: %s\n", res.DOTPath)
	if res.SVGPath != "" {
		fmt.Fprintf(w, "Wrote: %s\n", res.SVGPath)
	}
	return nil
}

func runPrune(cfg *config.Config, args []string, w io.Writer) error {
	outDir := cfg.Compliance.OutDir
	days := cfg.Compliance.VersionRetentionDays
	if len(args) > 0 {
		outDir = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("retentionDays: %w", err)
		}
		days = n
	}
	// same rule as the scheduler: no positive age means retention is off
	if days <= 0 {
		fmt.Fprintf(w, "Version retention disabled (retentionDays=%d); nothing pruned\n", days)
		return nil
	}
	n, err := versioning.Prune(outDir, time.Duration(days)*24*time.Hour, time.Now().UTC())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Pruned %d version(s) older than %d day(s) from %s\n", n, days, outDir)
	return nil
}
