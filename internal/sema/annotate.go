package sema

import (
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
)

// collectAnnotations walks a flat parts list (source-unit children or
// contract sub-nodes) pulling consecutive *ast.Annotation nodes into a
// pending buffer and attaching that buffer to the next non-annotation,
// non-stray-semicolon part. A buffer still pending at the end of the list
// (annotations followed by nothing, or only by a stray semicolon) is
// reported against item, mirroring the "annotations should precede ..."
// diagnostic the resolver raises when a marker has nothing to attach to.
//
// The returned slice drops every *ast.Annotation and *ast.StraySemicolon
// node; the parallel annotations slice holds, for each surviving part at
// the same index, the annotations that preceded it.
func collectAnnotations(fileNo int, parts []ast.Node, item string, ctx *Context) ([]ast.Node, [][]*ast.Annotation) {
	var kept []ast.Node
	var attached [][]*ast.Annotation
	var pending []*ast.Annotation

	flushOrphans := func() {
		for _, a := range pending {
			ctx.Diagnostics.Push(diag.Errorf(nodeLoc(fileNo, a),
				"annotations should precede '%s' or other item", item))
		}
		pending = nil
	}

	for _, part := range parts {
		switch n := part.(type) {
		case *ast.Annotation:
			pending = append(pending, n)
		case *ast.StraySemicolon:
			flushOrphans()
		default:
			kept = append(kept, part)
			attached = append(attached, pending)
			pending = nil
		}
	}
	flushOrphans()

	return kept, attached
}

// AnnotatePass runs the annotation-collector step (immediately after
// parse, before any other resolution) over one file's source unit,
// replacing unit.Children with the annotation-stripped list and returning
// the per-item annotation slices for downstream passes (pragma/import/
// type-declaration) to inspect and, where disallowed, reject.
func AnnotatePass(ctx *Context, fileNo int, unit *ast.SourceUnit) [][]*ast.Annotation {
	kept, attached := collectAnnotations(fileNo, unit.Children, "contract", ctx)
	unit.Children = kept

	for _, part := range kept {
		if c, ok := part.(*ast.ContractDefinition); ok {
			subKept, subAttached := collectAnnotations(fileNo, c.SubNodes, "constructor", ctx)
			c.SubNodes = subKept
			ctx.contractAnnotations[c] = subAttached
		}
	}

	return attached
}

// AnnotationsFor returns the annotations collected for part (a top-level
// unit.Children entry), or nil if none preceded it.
func AnnotationsFor(byIndex [][]*ast.Annotation, idx int) []*ast.Annotation {
	if idx < 0 || idx >= len(byIndex) {
		return nil
	}
	return byIndex[idx]
}

// ContractAnnotationsFor returns the per-sub-node annotation lists
// AnnotatePass recorded for c, or nil if AnnotatePass never saw it.
func (c *Context) ContractAnnotationsFor(contract *ast.ContractDefinition) [][]*ast.Annotation {
	return c.contractAnnotations[contract]
}
