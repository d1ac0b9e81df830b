// Package app wires the pipeline stages together: load COO, build the
// compressed matrix, mean-center, compute norms, search neighborhoods in
// parallel, aggregate recommendations, and print them — reproducing
// original_source/src/main.c's orchestration (including its exact
// progress-line wording, per SPEC_FULL §14) around the core subsystems.
package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pc3-recommend/internal/config"
	"github.com/katalvlaran/pc3-recommend/internal/coo"
	"github.com/katalvlaran/pc3-recommend/internal/neighbors"
	"github.com/katalvlaran/pc3-recommend/internal/recommend"
	"github.com/katalvlaran/pc3-recommend/internal/similarity"
	"github.com/katalvlaran/pc3-recommend/internal/sparse"
	"github.com/katalvlaran/pc3-recommend/internal/telemetry"
)

// Run executes the full pipeline for cfg.InputFile, writing the final
// recommendation report to out and progress/stage lines through log.
func Run(cfg *config.Config, log *logrus.Logger, out io.Writer) error {
	loadTimer := telemetry.NewTimer(log, "load")
	triplets, err := coo.ReadFile(cfg.InputFile)
	if err != nil {
		return err
	}
	loadTimer.Stop(fmt.Sprintf("Loaded triplet stream: %d x %d, %d records", triplets.NRows, triplets.NCols, len(triplets.Row)))

	buildTimer := telemetry.NewTimer(log, "build")
	mat, err := sparse.BuildFromCOO(triplets.NRows, triplets.NCols, triplets.Row, triplets.Col, triplets.Value)
	if err != nil {
		return err
	}
	buildTimer.Stop(fmt.Sprintf("Loaded Matrix: %d x %d with %d non-zeros", mat.MajorDim, mat.MinorDim, mat.NNZ()))

	centerTimer := telemetry.NewTimer(log, "center")
	centered := similarity.MeanCenter(mat)
	centerTimer.Stop("Mean Centered Matrix")

	normsTimer := telemetry.NewTimer(log, "norms")
	norms := similarity.RowNorms(centered)
	normsTimer.Stop("Computed row norms")

	k := cfg.K
	if k <= 0 {
		k = 1
	}

	searchTimer := telemetry.NewTimer(log, "neighbor_search")
	onFailure := func(user int, err error) {
		log.WithField("user", user).Warnf("neighbor search failed: %v", err)
	}
	neighborhoods, err := neighbors.SearchAll(centered, norms, k, cfg.Workers, telemetry.PoolStats{}, onFailure)
	if err != nil {
		return err
	}
	for _, nb := range neighborhoods {
		telemetry.NeighborhoodSize.Observe(float64(len(nb)))
	}
	searchTimer.Stop("Computed nearest neighbors")

	aggregateTimer := telemetry.NewTimer(log, "aggregate")
	recs := recommend.All(mat, centered, neighborhoods)
	aggregateTimer.Stop("Aggregated recommendations")

	writeReport(out, recs, cfg.TopN)
	return nil
}

// writeReport prints the per-user recommendation report in §6's exact
// format. topN caps the number of items printed per user (0 = unbounded,
// the SPEC_FULL §4.8 expansion); it never changes what was aggregated,
// only how much of it is shown.
func writeReport(out io.Writer, recs [][]recommend.Recommendation, topN int) {
	for u, userRecs := range recs {
		shown := userRecs
		if topN > 0 && len(shown) > topN {
			recommend.SortByScoreDescending(shown)
			shown = append([]recommend.Recommendation(nil), shown[:topN]...)
		}
		recommend.SortByItem(shown)

		fmt.Fprintf(out, "Recommendations for User %d:\n", u)
		for _, r := range shown {
			fmt.Fprintf(out, "\tItem %d: Score %.4f\n", r.Item, r.Score)
		}
		fmt.Fprintln(out)
	}
}
