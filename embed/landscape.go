package embed

import "github.com/katalvlaran/ctree/landscape"

// RectangularLandscape bundles a rooted tree, its weights, and the
// resulting embedding, mirroring the facade the original tool hands to its
// renderer once layout is complete.
type RectangularLandscape struct {
	Tree      *landscape.Tree
	Weights   *landscape.Weights
	Embedding *Embedding
}

// Build roots src at rootNode, computes weights from wm (nil for unit
// weights), and lays the result out within bounds.
func Build(src landscape.ScalarTree, rootNode int, wm landscape.WeightMap, bounds Rectangle) (*RectangularLandscape, error) {
	tree, err := landscape.New(src, rootNode)
	if err != nil {
		return nil, err
	}
	weights := landscape.Compute(tree, wm)
	emb, err := (Embedder{Bounds: bounds}).Embed(tree, weights)
	if err != nil {
		return nil, err
	}
	return &RectangularLandscape{Tree: tree, Weights: weights, Embedding: emb}, nil
}
