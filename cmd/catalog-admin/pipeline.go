package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/curiogoods/catalog-api/internal/bootstrap"
	"github.com/curiogoods/catalog-api/internal/domain/branding"
	"github.com/curiogoods/catalog-api/internal/domain/model"
)

func runPreflight(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("preflight", flag.ContinueOnError)
	limit := limitFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	services, err := bootstrap.BuildBrandingServices(ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer closeServices(ctx, services)

	report, err := services.Branding.Preflight(ctx.Ctx, model.RunRequest{Limit: *limit})
	if err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	return printPreflightReport(ctx, report)
}

func printPreflightReport(ctx *commandContext, report *model.PreflightReport) error {
	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ITEM\tHANDLE\tVERDICT\n"); err != nil {
		return err
	}
	for _, verdict := range report.Verdicts {
		outcome := "process"
		if !verdict.WillProcess {
			outcome = "skip: " + verdict.SkipReason
		}
		if err := writef(tw, "%s\t%s\t%s\n", verdict.ItemID, verdict.Handle, outcome); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return writef(ctx.Out, "\n%d to process, %d to skip\n", report.Eligible, report.Skipped)
}

func runPipeline(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	limit := limitFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	services, err := bootstrap.BuildBrandingServices(ctx.Config, ctx.Logger)
	if err != nil {
		return err
	}
	defer closeServices(ctx, services)

	sink := branding.EventSinkFunc(func(_ context.Context, event model.ProgressEvent) {
		printProgressEvent(ctx, event)
	})

	result, err := services.Branding.Run(ctx.Ctx, model.RunRequest{Limit: *limit}, sink)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return printRunSummary(ctx, result.Summary)
}

func printProgressEvent(ctx *commandContext, event model.ProgressEvent) {
	switch event.Type {
	case model.ProgressStart:
		_ = writef(ctx.Out, "run %s started (limit %d)\n", event.RunID, event.Limit)
	case model.ProgressItem:
		line := fmt.Sprintf("  %s  %s", event.Status, event.ItemID)
		if event.Detail != "" {
			line += "  (" + event.Detail + ")"
		}
		_ = writef(ctx.Out, "%s\n", line)
	case model.ProgressComplete, model.ProgressError:
		// Terminal state is printed from the run result or the returned error.
	}
}

func printRunSummary(ctx *commandContext, summary model.RunSummary) error {
	if err := writef(ctx.Out, "\n%d items: %d succeeded, %d failed, %d timed out, %d skipped\n",
		summary.Total, summary.Succeeded, summary.Failed, summary.TimedOut, summary.Skipped); err != nil {
		return err
	}
	if summary.Total > summary.Skipped {
		return writef(ctx.Out, "success rate: %.0f%%\n", summary.SuccessRate*100)
	}
	return nil
}

func closeServices(ctx *commandContext, services *bootstrap.ServiceContainer) {
	if err := services.Close(); err != nil {
		ctx.Logger.ErrorContext(ctx.Ctx, "close services failed", "error", err)
	}
}
