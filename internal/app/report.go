package app

import (
	"context"
	"fmt"
	"io"
)

// WriteReport prints one line per result, followed by its lint findings,
// and returns the number of failed documents.
func WriteReport(w io.Writer, results []Result) int {
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %s nodes=%d edges=%d fingerprint=%s\n",
			r.Path, r.Graph.Len(), r.Graph.EdgeCount(), shortFingerprint(r.Fingerprint))
		for _, f := range r.Findings {
			fmt.Fprintf(w, "     lint %s\n", f)
		}
	}
	return failed
}

func shortFingerprint(fp string) string {
	if len(fp) > 16 {
		return fp[:16]
	}
	return fp
}

// Run compiles every document under paths and writes the report. It
// returns the results and the number of failed documents.
func (a *App) Run(ctx context.Context, paths []string) ([]Result, int, error) {
	a.logger.Debug("App.Run method started.", "paths", paths)

	results, err := a.CompileAll(ctx, paths)
	if err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		a.logger.Warn("No goal model documents found.", "paths", paths)
	}

	failed := WriteReport(a.outW, results)
	a.logger.Debug("App.Run method finished.", "documents", len(results), "failed", failed)
	return results, failed, nil
}
