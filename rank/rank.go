package rank

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/viant/cbir/distance"
	"github.com/viant/cbir/feature"
)

// Entry is one database image: its identifier, its feature vector, and, when
// the metric consumes one, its DNN embedding.
type Entry struct {
	ID        string
	Vector    feature.Vector
	Embedding []float32
}

// Query is the image being searched for. For MetricCosine the embedding is
// the feature, so it goes in Vector; Embedding is only read by
// MetricBlueScene.
type Query struct {
	Vector    feature.Vector
	Embedding []float32
}

// Result is a single ranked match.
type Result struct {
	ID       string
	Distance float64
}

// Rank computes the metric between the query and every database entry, drops
// entries whose computation errored (reporting them via params.Warn when
// set), sorts the rest by ascending distance with a stable order for ties,
// and truncates to topN. topN <= 0 returns all matches.
func Rank(query Query, db []Entry, metric distance.Metric, params distance.Params, topN int) []Result {
	results := make([]Result, 0, len(db))
	for i := range db {
		d, err := entryDistance(query, &db[i], metric, params)
		if err != nil {
			if params.Warn != nil {
				params.Warn("rank: skipping %s: %v", db[i].ID, err)
			}
			continue
		}
		results = append(results, Result{ID: db[i].ID, Distance: d})
	}
	return finish(results, topN)
}

// RankParallel is Rank with the distance scan partitioned across workers.
// Results are identical to Rank for the same inputs: per-entry scores are
// collected in input order before the single final sort. workers <= 0 uses
// GOMAXPROCS. params.Warn may be invoked concurrently and must be safe for
// that.
func RankParallel(ctx context.Context, query Query, db []Entry, metric distance.Metric, params distance.Params, topN, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(db) {
		workers = len(db)
	}
	if workers <= 1 {
		return Rank(query, db, metric, params, topN), nil
	}

	scores := make([]float64, len(db))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(db) + workers - 1) / workers
	for lo := 0; lo < len(db); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(db) {
			hi = len(db)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := entryDistance(query, &db[i], metric, params)
				if err != nil {
					if params.Warn != nil {
						params.Warn("rank: skipping %s: %v", db[i].ID, err)
					}
					d = math.NaN()
				}
				scores[i] = d
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(db))
	for i := range db {
		if math.IsNaN(scores[i]) {
			continue
		}
		results = append(results, Result{ID: db[i].ID, Distance: scores[i]})
	}
	return finish(results, topN), nil
}

func entryDistance(query Query, e *Entry, metric distance.Metric, params distance.Params) (float64, error) {
	if metric == distance.MetricBlueScene {
		params.QueryEmbedding = query.Embedding
		params.EntryEmbedding = e.Embedding
	}
	return distance.Compute(query.Vector, e.Vector, metric, params)
}

func finish(results []Result, topN int) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if topN > 0 && topN < len(results) {
		results = results[:topN]
	}
	return results
}
