package similarity

// Similarity classifications. Pairs scoring at or above the duplicate
// threshold are duplicates; pairs in [0.60, 0.95) are near-duplicates;
// everything below is ignored.
const (
	TypeDuplicate     = "duplicate"
	TypeNearDuplicate = "near_duplicate"

	duplicateThreshold = 0.95
	nearDupThreshold   = 0.60
)

// SimilarPair is one classified question pair.
type SimilarPair struct {
	QuestionID1     int     `json:"question_id_1"`
	QuestionText1   string  `json:"question_text_1"`
	QuestionID2     int     `json:"question_id_2"`
	QuestionText2   string  `json:"question_text_2"`
	SimilarityScore float64 `json:"similarity_score"`
	SimilarityType  string  `json:"similarity_type"`
}

// SimilarityCluster is an equivalence class of transitively similar
// questions. Singletons are never reported.
type SimilarityCluster struct {
	ClusterID         int      `json:"cluster_id"`
	QuestionIDs       []int    `json:"question_ids"`
	QuestionTexts     []string `json:"question_texts"`
	SimilarityType    string   `json:"similarity_type"`
	AverageSimilarity float64  `json:"average_similarity"`
}

type SimilarityReport struct {
	TotalQuestions      int                 `json:"total_questions"`
	DuplicatePairs      []SimilarPair       `json:"duplicate_pairs"`
	NearDuplicatePairs  []SimilarPair       `json:"near_duplicate_pairs"`
	Clusters            []SimilarityCluster `json:"clusters"`
	UniqueQuestionCount int                 `json:"unique_question_count"`
}
