// Package similarity detects duplicate and near-duplicate questions
// within one exam using TF-IDF cosine similarity, and groups
// transitively similar questions into clusters.
package similarity

import (
	"math"
	"strings"

	"github.com/examforge/examforge/internal/exam"
)

// Analyze scores every unordered question pair and reports duplicates
// (cosine >= 0.95), near-duplicates (>= 0.60), and their transitive
// clusters. With fewer than two questions the report is trivial.
func Analyze(questions []exam.Question) SimilarityReport {
	n := len(questions)
	report := SimilarityReport{
		TotalQuestions:      n,
		DuplicatePairs:      []SimilarPair{},
		NearDuplicatePairs:  []SimilarPair{},
		Clusters:            []SimilarityCluster{},
		UniqueQuestionCount: n,
	}
	if n < 2 {
		return report
	}

	texts := make([]string, n)
	ids := make([]int, n)
	for i, q := range questions {
		texts[i] = strings.TrimSpace(q.Text)
		ids[i] = q.ID
	}

	vectors := vectorize(texts)

	var classified []SimilarPair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := cosine(vectors[i], vectors[j])
			if score < nearDupThreshold {
				continue
			}
			pair := SimilarPair{
				QuestionID1:     ids[i],
				QuestionText1:   texts[i],
				QuestionID2:     ids[j],
				QuestionText2:   texts[j],
				SimilarityScore: roundScore(score),
				SimilarityType:  TypeNearDuplicate,
			}
			if score >= duplicateThreshold {
				pair.SimilarityType = TypeDuplicate
				report.DuplicatePairs = append(report.DuplicatePairs, pair)
			} else {
				report.NearDuplicatePairs = append(report.NearDuplicatePairs, pair)
			}
			classified = append(classified, pair)
		}
	}

	report.Clusters = buildClusters(classified, ids, texts)

	clustered := map[int]struct{}{}
	for _, c := range report.Clusters {
		for _, id := range c.QuestionIDs {
			clustered[id] = struct{}{}
		}
	}
	unique := 0
	for _, id := range ids {
		if _, ok := clustered[id]; !ok {
			unique++
		}
	}
	report.UniqueQuestionCount = unique

	return report
}

// buildClusters merges classified pairs with union-find and emits the
// multi-member equivalence classes in order of first appearance. A
// cluster's average similarity covers only the classified pairs inside
// it, not every pairwise score.
func buildClusters(pairs []SimilarPair, ids []int, texts []string) []SimilarityCluster {
	uf := newUnionFind(ids)
	for _, p := range pairs {
		uf.union(p.QuestionID1, p.QuestionID2)
	}

	groups := map[int][]int{}
	var roots []int
	for _, id := range ids {
		root := uf.find(id)
		if _, seen := groups[root]; !seen {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], id)
	}

	textByID := make(map[int]string, len(ids))
	for i, id := range ids {
		textByID[id] = texts[i]
	}

	clusters := []SimilarityCluster{}
	for _, root := range roots {
		members := groups[root]
		if len(members) < 2 {
			continue
		}
		memberSet := make(map[int]struct{}, len(members))
		for _, m := range members {
			memberSet[m] = struct{}{}
		}

		hasDuplicate := false
		scoreSum, scoreCount := 0.0, 0
		for _, p := range pairs {
			if _, ok1 := memberSet[p.QuestionID1]; !ok1 {
				continue
			}
			if _, ok2 := memberSet[p.QuestionID2]; !ok2 {
				continue
			}
			if p.SimilarityType == TypeDuplicate {
				hasDuplicate = true
			}
			scoreSum += p.SimilarityScore
			scoreCount++
		}

		clusterType := TypeNearDuplicate
		if hasDuplicate {
			clusterType = TypeDuplicate
		}
		avg := 0.0
		if scoreCount > 0 {
			avg = scoreSum / float64(scoreCount)
		}

		memberTexts := make([]string, len(members))
		for i, m := range members {
			memberTexts[i] = textByID[m]
		}
		clusters = append(clusters, SimilarityCluster{
			ClusterID:         len(clusters) + 1,
			QuestionIDs:       members,
			QuestionTexts:     memberTexts,
			SimilarityType:    clusterType,
			AverageSimilarity: roundScore(avg),
		})
	}
	return clusters
}

func roundScore(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
