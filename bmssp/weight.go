package bmssp

import "github.com/katalvlaran/bmssp/core"

// resolveWeight turns the configured weight specification into a single
// WeightFunc used by the snapshot builder.
//
// Resolution rules:
//   - A callback (WithWeightFunc) is used verbatim.
//   - Otherwise the named attribute is looked up per edge. The attribute
//     DefaultWeightAttribute maps to Edge.Weight on weighted graphs; on
//     unweighted graphs every edge costs DefaultEdgeWeight (hop counting).
//   - Any other attribute is read from Edge.Attrs, defaulting to
//     DefaultEdgeWeight when absent. The default is decided here, once,
//     never re-checked in the relaxation path.
func resolveWeight(weighted bool, o Options) WeightFunc {
	if o.Weight != nil {
		return o.Weight
	}

	attr := o.WeightAttr
	if attr == "" {
		attr = DefaultWeightAttribute
	}

	if attr == DefaultWeightAttribute {
		if !weighted {
			return hopWeight
		}

		return primaryWeight
	}

	return attributeWeight(attr)
}

// hopWeight prices every edge at DefaultEdgeWeight.
func hopWeight(_, _ string, _ *core.Edge) (float64, bool) {
	return DefaultEdgeWeight, true
}

// primaryWeight reads the edge's primary Weight field.
func primaryWeight(_, _ string, e *core.Edge) (float64, bool) {
	return e.Weight, true
}

// attributeWeight reads the named attribute, defaulting when absent.
func attributeWeight(name string) WeightFunc {
	return func(_, _ string, e *core.Edge) (float64, bool) {
		if w, ok := e.Attr(name); ok {
			return w, true
		}

		return DefaultEdgeWeight, true
	}
}
