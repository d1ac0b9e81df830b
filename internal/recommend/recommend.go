// Package recommend implements the sequential aggregation stage: for
// each user, merge its rated items against each neighbor's rated items
// and accumulate weighted scores into a hashmap.Map. Grounded on
// original_source/src/main.c's recommendation loop following
// find_nearest_neighbors.
package recommend

import (
	"sort"

	"github.com/katalvlaran/pc3-recommend/internal/hashmap"
	"github.com/katalvlaran/pc3-recommend/internal/neighbors"
	"github.com/katalvlaran/pc3-recommend/internal/sparse"
)

// Recommendation is a single (item, score) pair, score = weighted_sum /
// weight_sum.
type Recommendation struct {
	Item  int
	Score float64
}

// ForUser aggregates recommendations for user u from its neighborhood,
// reading rated items from the mean-centered matrix (so neighbor
// contributions are centered ratings, matching §8 scenario 5) and "has
// the user already rated this" from rawRatings (the original,
// uncentered matrix — mean centering may zero out a stored entry but it
// is still a rated item for seen-item purposes).
func ForUser(rawRatings, centered *sparse.Matrix, u int, neighborhood neighbors.Neighborhood) []Recommendation {
	acc := hashmap.New()

	userItems, _ := rawRatings.Row(u)

	for _, nb := range neighborhood {
		neighborItems, neighborValues := centered.Row(nb.ID)

		i, j := 0, 0
		for j < len(neighborItems) {
			for i < len(userItems) && userItems[i] < neighborItems[j] {
				i++
			}
			if i < len(userItems) && userItems[i] == neighborItems[j] {
				i++
				j++
				continue
			}
			acc.Accumulate(neighborItems[j], nb.Similarity*neighborValues[j], nb.Similarity)
			j++
		}
	}

	var out []Recommendation
	acc.Each(func(item int, v hashmap.Value) {
		var score float64
		if v.WeightSum != 0 {
			score = v.WeightedSum / v.WeightSum
		}
		out = append(out, Recommendation{Item: item, Score: score})
	})

	return out
}

// All aggregates recommendations for every user, in ascending user
// order, over the already-computed neighborhoods slice.
func All(rawRatings, centered *sparse.Matrix, neighborhoods []neighbors.Neighborhood) [][]Recommendation {
	out := make([][]Recommendation, len(neighborhoods))
	for u := range neighborhoods {
		out[u] = ForUser(rawRatings, centered, u, neighborhoods[u])
	}
	return out
}

// SortByItem orders recs by Item ascending — a convenience for tests
// and for any caller that wants deterministic output despite §6's
// "implementation-defined" item order within a user.
func SortByItem(recs []Recommendation) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].Item < recs[j].Item })
}

// SortByScoreDescending orders recs by Score descending, used by the
// --top-n cap to keep the highest-scoring items when truncating.
func SortByScoreDescending(recs []Recommendation) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
}
