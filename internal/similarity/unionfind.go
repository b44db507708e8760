package similarity

// unionFind tracks disjoint sets of question ids under merge.
type unionFind struct {
	parent map[int]int
}

func newUnionFind(ids []int) *unionFind {
	parent := make(map[int]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	return &unionFind{parent: parent}
}

// find returns the set root for x, halving paths as it walks.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	u.parent[u.find(a)] = u.find(b)
}
