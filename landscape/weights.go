package landscape

// WeightMap supplies a per-arc weight from an external source (e.g. a
// parsed weight-map file). When absent, every arc defaults to weight 1.
type WeightMap interface {
	// Weight returns the weight assigned to tree node i's parent arc.
	Weight(i int) float64
}

// DefaultWeights is a WeightMap that assigns every node's parent arc a
// weight of 1, used when no external weight map is supplied.
type DefaultWeights struct{}

// Weight always returns 1.
func (DefaultWeights) Weight(int) float64 { return 1 }

// Weights holds, for every node of a rooted Tree, the weight of its own
// parent arc (NodeWeight) and the total weight of the subtree rooted at it
// (TotalWeight, i.e. its own arc weight plus every descendant arc weight).
// The root's NodeWeight is 0 since it has no parent arc.
type Weights struct {
	node  []float64
	total []float64
}

// Compute propagates arc weights up a rooted tree using an iterative
// post-order traversal: every node's total weight is its own arc weight
// plus the sum of its children's total weights, so no node's total is
// finalized until all of its descendants have been visited.
func Compute(t *Tree, wm WeightMap) *Weights {
	if wm == nil {
		wm = DefaultWeights{}
	}

	n := t.NumNodes()
	node := make([]float64, n)
	total := make([]float64, n)

	for i := 0; i < n; i++ {
		if i == t.Root() {
			node[i] = 0
		} else {
			node[i] = wm.Weight(i)
		}
	}

	for _, v := range t.PostOrder() {
		sum := node[v]
		for _, c := range t.Children(v) {
			sum += total[c]
		}
		total[v] = sum
	}

	return &Weights{node: node, total: total}
}

// NodeWeight returns node i's own parent-arc weight.
func (w *Weights) NodeWeight(i int) float64 { return w.node[i] }

// TotalWeight returns the total weight of the subtree rooted at node i.
func (w *Weights) TotalWeight(i int) float64 { return w.total[i] }
