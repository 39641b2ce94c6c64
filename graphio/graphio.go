package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sssp/core"
)

// infToken is how +Inf distances appear in distance files.
const infToken = "inf"

// LoadOption tweaks Load behavior.
type LoadOption func(*loadConfig)

type loadConfig struct {
	normalize bool
}

// WithNormalizedWeights divides every weight by the maximum weight
// observed in the input, mapping weights into [0, 1].
func WithNormalizedWeights() LoadOption {
	return func(c *loadConfig) { c.normalize = true }
}

// Load parses the edge-list format. Vertex IDs are remapped to a dense
// range in order of first appearance; malformed lines are skipped.
func Load(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		edges []core.Edge
		maxW  float64
		remap = make(map[int]int)
	)
	dense := func(raw int) int {
		id, ok := remap[raw]
		if !ok {
			id = len(remap)
			remap[raw] = id
		}

		return id
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			continue
		}
		edges = append(edges, core.Edge{From: dense(u), To: dense(v), Weight: w})
		if w > maxW {
			maxW = w
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: load: %w", err)
	}

	if cfg.normalize && maxW > 0 {
		inv := 1 / maxW
		for i := range edges {
			edges[i].Weight *= inv
		}
	}

	return core.NewGraph(len(remap), edges)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...LoadOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Save writes g in the edge-list format, one edge per line in CSR
// order.
func Save(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for u := 0; u < g.VertexCount(); u++ {
		targets, weights := g.Neighbors(u)
		for k, v := range targets {
			if _, err := fmt.Fprintf(bw, "%d %d %g\n", u, v, weights[k]); err != nil {
				return fmt.Errorf("graphio: save: %w", err)
			}
		}
	}

	return bw.Flush()
}

// SaveFile writes g to path, creating or truncating it.
func SaveFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := Save(f, g); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// WriteDistances emits one distance per line in vertex order, with
// +Inf rendered as "inf".
func WriteDistances(w io.Writer, dist []float64) error {
	bw := bufio.NewWriter(w)
	for _, d := range dist {
		var err error
		if math.IsInf(d, 1) {
			_, err = fmt.Fprintln(bw, infToken)
		} else {
			_, err = fmt.Fprintf(bw, "%g\n", d)
		}
		if err != nil {
			return fmt.Errorf("graphio: distances: %w", err)
		}
	}

	return bw.Flush()
}
