package centrality

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/turtacn/CiteGraph-Analytics/internal/domain/graph"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// EigenOptions holds the tunables of the eigenvector computation.
type EigenOptions struct {
	// Tolerance is the L2 convergence threshold for power iteration.
	Tolerance float64

	// MaxIterations caps power iteration so non-converging spectra still
	// terminate.  Hitting the cap yields a ConvergenceWarning.
	MaxIterations int

	// Method selects the algorithm: "power" (sparse power iteration, O(V+E)
	// memory) or "dense" (full eigen-decomposition of the adjacency matrix,
	// O(V²) memory, exact).  Dense trades memory for simplicity and is only
	// sensible for small graphs; see MaxDenseOrder.
	Method string

	// MaxDenseOrder is the largest node count for which the dense method is
	// permitted.  Larger graphs fall back to power iteration rather than
	// materializing a V×V matrix.
	MaxDenseOrder int
}

// DefaultEigenOptions returns the standard eigenvector settings.
func DefaultEigenOptions() EigenOptions {
	return EigenOptions{
		Tolerance:     1e-10,
		MaxIterations: 1000,
		Method:        "power",
		MaxDenseOrder: 2000,
	}
}

// cleanupFloor is the relative magnitude below which a score is treated as
// numerical dust and set to exactly zero.  This is what makes the
// off-component zeros of a disconnected graph come out as true zeros instead
// of residue left behind when iteration stops at tolerance.  It must sit
// comfortably above the power-iteration tolerance for that reason.
const cleanupFloor = 1e-8

// Eigenvector computes eigenvector centrality: score(v) is the v-th component
// of the dominant eigenvector of the cited-by adjacency relation (score flows
// along in-edges, matching in-degree's importance semantics), non-negative
// and L2-normalized so scores are comparable across runs.
//
// Known limitation, preserved deliberately: on a disconnected or
// non-strongly-connected graph the dominant eigenvalue belongs to one
// strongly-connected region, and every node outside it scores exactly zero
// regardless of its actual citation importance.  Downstream interpretation
// depends on this behaviour (on the full patent dataset most top-ranked ids
// are pre-dataset sink nodes from one component), so it must not be "fixed".
// Use PageRank when robustness to disconnectedness matters.
func Eigenvector(g *graph.CitationGraph, opts EigenOptions) (*ScoreTable, *ConvergenceWarning, error) {
	n := g.Order()
	if n == 0 {
		return nil, nil, errEmptyGraph(common.MeasureEigenvector)
	}

	st := newScoreTable(common.MeasureEigenvector, g)
	if n == 1 {
		// Degenerate: a single node's score is its in-degree presence; a
		// self-loop makes it 1, otherwise there is nothing to propagate.
		if g.InDegreeAt(0) > 0 {
			st.scores[0] = 1
		}
		return st, nil, nil
	}

	if opts.Method == "dense" && n <= opts.MaxDenseOrder {
		if err := eigenDense(g, st.scores); err != nil {
			return nil, nil, err
		}
		cleanup(st.scores)
		return st, nil, nil
	}

	warn := eigenPower(g, st.scores, opts)
	cleanup(st.scores)
	return st, warn, nil
}

// eigenPower runs shifted power iteration x ← (Aᵀ + I)x with L2
// normalization each step.  The +I shift preserves eigenvectors while moving
// every eigenvalue off zero, which keeps graphs whose adjacency is nilpotent
// (pure citation chains) from collapsing to the zero vector.
//
// The start vector decays geometrically over node order instead of being
// uniform.  On a well-behaved spectrum this changes nothing, since power
// iteration forgets its start, but when two components tie for the dominant
// eigenvalue it deterministically concentrates mass on the component seen
// first, rather than splitting evenly between them.
func eigenPower(g *graph.CitationGraph, out []float64, opts EigenOptions) *ConvergenceWarning {
	n := g.Order()

	x := make([]float64, n)
	w := 1.0
	for i := range x {
		x[i] = w
		if w > 1e-60 {
			w *= 0.5
		}
	}
	normalizeL2(x)

	next := make([]float64, n)
	residual := math.Inf(1)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		copy(next, x) // the +I shift
		for u := 0; u < n; u++ {
			for _, v := range g.Successors(u) {
				next[v] += x[u]
			}
		}

		if normalizeL2(next) == 0 {
			// No mass anywhere; everything scores zero.
			for i := range out {
				out[i] = 0
			}
			return nil
		}

		residual = 0
		for i := range next {
			d := next[i] - x[i]
			residual += d * d
		}
		residual = math.Sqrt(residual)

		x, next = next, x

		if residual < opts.Tolerance {
			copy(out, x)
			return nil
		}
	}

	copy(out, x)
	return &ConvergenceWarning{
		Measure:    common.MeasureEigenvector,
		Iterations: opts.MaxIterations,
		Residual:   residual,
		Tolerance:  opts.Tolerance,
	}
}

// eigenDense materializes the cited-by adjacency matrix and extracts the
// eigenvector of the largest-modulus eigenvalue via gonum's dense
// eigen-decomposition.  O(V²) memory and O(V³) time; callers gate it behind
// MaxDenseOrder.
func eigenDense(g *graph.CitationGraph, out []float64) error {
	n := g.Order()

	// Cited-by direction: entry (v,u) is 1 when u cites v.
	a := mat.NewDense(n, n, nil)
	for u := 0; u < n; u++ {
		for _, v := range g.Successors(u) {
			a.Set(v, u, 1)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		// Fall back to the iterative method rather than failing the run.
		warn := eigenPower(g, out, DefaultEigenOptions())
		if warn != nil {
			return warn.AsAppError()
		}
		return nil
	}

	values := eig.Values(nil)
	maxAbs := 0.0
	for _, v := range values {
		if a := cmplxAbs(v); a > maxAbs {
			maxAbs = a
		}
	}
	// Several eigenvalues can share the spectral radius (a plain cycle has a
	// full ring of them).  Perron–Frobenius guarantees the radius is attained
	// by a real non-negative eigenvalue, so among the near-maximal ones pick
	// the one closest to the positive real axis.
	dominant := 0
	best := math.Inf(-1)
	for i, v := range values {
		if cmplxAbs(v) < maxAbs*(1-1e-9) {
			continue
		}
		score := real(v) - math.Abs(imag(v))
		if score > best {
			best = score
			dominant = i
		}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	// Per Perron–Frobenius the dominant eigenvector of a non-negative matrix
	// can be chosen non-negative on its component; fix the sign so the summed
	// mass is positive, then clip the residual numerical noise.
	sum := 0.0
	for i := 0; i < n; i++ {
		out[i] = real(vectors.At(i, dominant))
		sum += out[i]
	}
	if sum < 0 {
		for i := range out {
			out[i] = -out[i]
		}
	}
	for i := range out {
		if out[i] < 0 {
			out[i] = 0
		}
	}
	normalizeL2(out)
	return nil
}

func cmplxAbs(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

// normalizeL2 scales x to unit L2 norm in place and returns the pre-scaling
// norm.  A zero vector is left untouched.
func normalizeL2(x []float64) float64 {
	ss := 0.0
	for _, v := range x {
		ss += v * v
	}
	norm := math.Sqrt(ss)
	if norm == 0 {
		return 0
	}
	for i := range x {
		x[i] /= norm
	}
	return norm
}

// cleanup zeroes entries below cleanupFloor relative to the largest score and
// re-normalizes.  Off-component scores decay exponentially during iteration;
// without the floor they linger as denormal noise instead of the exact zeros
// the disconnected-graph semantics promise.
func cleanup(x []float64) {
	max := 0.0
	for _, v := range x {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return
	}
	changed := false
	for i, v := range x {
		if v < max*cleanupFloor {
			if v != 0 {
				changed = true
			}
			x[i] = 0
		}
	}
	if changed {
		normalizeL2(x)
	}
}
