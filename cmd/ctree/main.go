// Command ctree computes the contour tree of a scalar function sampled on
// the vertices of a graph, reading a vertex-value file and an edge file
// and writing a contour-tree file.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ctree/contourtree"
	"github.com/katalvlaran/ctree/internal/graphstore"
	"github.com/katalvlaran/ctree/iofmt"
	"github.com/katalvlaran/ctree/simplify"
)

const usage = `usage: ctree <vertex-file> <edge-file> <output-file> [--join <file>] [--split <file>] [--simplify <threshold>]`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type config struct {
	vertexFile string
	edgeFile   string
	outFile    string
	joinFile   string
	splitFile  string
	simplify   float64
	doSimplify bool
}

func parseArgs(args []string) (*config, error) {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Println(usage)
		os.Exit(0)
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("not enough arguments\n%s", usage)
	}

	cfg := &config{vertexFile: args[0], edgeFile: args[1], outFile: args[2]}
	rest := args[3:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--join":
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("--join requires a file argument")
			}
			cfg.joinFile = rest[i]
		case "--split":
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("--split requires a file argument")
			}
			cfg.splitFile = rest[i]
		case "--simplify":
			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("--simplify requires a threshold argument")
			}
			var threshold float64
			if _, err := fmt.Sscanf(rest[i], "%g", &threshold); err != nil {
				return nil, fmt.Errorf("invalid --simplify threshold: %w", err)
			}
			cfg.simplify = threshold
			cfg.doSimplify = true
		default:
			return nil, fmt.Errorf("unrecognized argument: %s", rest[i])
		}
	}
	return cfg, nil
}

func run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fatal error: an uncaught panic occurred: %v", r)
		}
	}()

	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	vf, err := os.Open(cfg.vertexFile)
	if err != nil {
		return fmt.Errorf("opening vertex file: %w", err)
	}
	defer vf.Close()
	values, err := iofmt.ReadVertexValues(vf)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.vertexFile, err)
	}

	ef, err := os.Open(cfg.edgeFile)
	if err != nil {
		return fmt.Errorf("opening edge file: %w", err)
	}
	defer ef.Close()
	edges, err := iofmt.ReadEdges(ef)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.edgeFile, err)
	}

	complex := contourtree.NewComplex()
	handles := make([]graphstore.NodeHandle, len(values))
	for i, v := range values {
		handles[i] = complex.AddVertex(v)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(handles) || e.To < 0 || e.To >= len(handles) {
			return fmt.Errorf("%s: edge references vertex id out of range: %d-%d", cfg.edgeFile, e.From, e.To)
		}
		if _, err := complex.AddEdge(handles[e.From], handles[e.To]); err != nil {
			return fmt.Errorf("adding edge %d-%d: %w", e.From, e.To, err)
		}
	}

	if !complex.IsConnected() {
		return fmt.Errorf("the input graph is not connected")
	}

	algo := contourtree.CarrsAlgorithm{CopyJoinSplitTrees: cfg.joinFile != "" || cfg.splitFile != ""}
	res, err := algo.Compute(complex)
	if err != nil {
		return err
	}

	if cfg.joinFile != "" {
		if err := writeArcFile(cfg.joinFile, values, res.JoinTree); err != nil {
			return err
		}
	}
	if cfg.splitFile != "" {
		if err := writeArcFile(cfg.splitFile, values, res.SplitTree); err != nil {
			return err
		}
	}

	tree := res.Tree
	if cfg.doSimplify {
		simplified := simplify.Simplify(tree, simplify.WithThreshold(cfg.simplify))
		return writeSimplifiedContourTree(cfg.outFile, simplified)
	}
	return writeContourTree(cfg.outFile, tree)
}

func writeArcFile(path string, values []float64, arcs []contourtree.Arc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	ids := make([]int, len(values))
	for i := range ids {
		ids[i] = i
	}
	jsArcs := make([]iofmt.JoinSplitArc, len(arcs))
	for i, a := range arcs {
		jsArcs[i] = iofmt.JoinSplitArc{From: a.From, To: a.To}
	}
	return iofmt.WriteJoinSplitTree(f, ids, values, jsArcs)
}

func writeContourTree(path string, tree *contourtree.ContourTree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	file := &iofmt.ContourTreeFile{
		NodeIDs: make([]int, tree.NumNodes()),
		Values:  make([]float64, tree.NumNodes()),
	}
	for i := 0; i < tree.NumNodes(); i++ {
		file.NodeIDs[i] = tree.NodeID(i).Index()
		file.Values[i] = tree.Value(i)
	}
	for idx, a := range tree.Arcs() {
		arc := iofmt.TreeArc{From: a.From, To: a.To}
		for _, m := range tree.Members(idx) {
			arc.Members = append(arc.Members, iofmt.TreeMember{ID: m.ID.Index(), Value: m.Value})
		}
		file.Arcs = append(file.Arcs, arc)
	}
	return iofmt.WriteContourTree(f, file)
}

func writeSimplifiedContourTree(path string, r *simplify.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	file := &iofmt.ContourTreeFile{
		NodeIDs: make([]int, r.NumNodes()),
		Values:  make([]float64, r.NumNodes()),
	}
	for i := 0; i < r.NumNodes(); i++ {
		file.NodeIDs[i] = r.Node(i).ID.Index()
		file.Values[i] = r.Node(i).Value
	}
	for idx, a := range r.Arcs() {
		arc := iofmt.TreeArc{From: a.From, To: a.To}
		for _, m := range r.Members(idx) {
			arc.Members = append(arc.Members, iofmt.TreeMember{ID: m.ID.Index(), Value: m.Value})
		}
		file.Arcs = append(file.Arcs, arc)
	}
	return iofmt.WriteContourTree(f, file)
}
