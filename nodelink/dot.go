package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvtree/traverse"
)

// DefaultRankDir lays the tree out top to bottom.
const DefaultRankDir = "TB"

// HighlightColor fills highlighted nodes.
const HighlightColor = "gold"

// Options configures node-link diagram generation.
type Options struct {
	// Highlight lists labels whose nodes are filled with HighlightColor.
	Highlight []string

	// RankDir is the Graphviz rankdir (TB, LR, BT, RL). Empty means TB.
	RankDir string
}

// ids carries a node's own identifier and its parent's (-1 for the root).
type ids struct {
	self, parent int
}

// ToDOT converts the tree under root to Graphviz DOT source. label supplies
// the text of each node.
func ToDOT[N traverse.Walkable[N]](root N, label func(N) string, opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = DefaultRankDir
	}

	// 1. Number nodes in visit order; a child learns its parent's number
	//    through the shared *ids, filled in when the parent is visited.
	var nodes, edges bytes.Buffer
	next := 0
	traverse.DepthFirstPayload(root, &ids{parent: -1},
		func(_ N, parent traverse.Visit[N, *ids]) *ids {
			return &ids{parent: parent.Payload.self}
		},
		func(v traverse.Visit[N, *ids]) bool {
			v.Payload.self = next
			next++
			fmt.Fprintf(&nodes, "  %q [%s];\n", nodeID(v.Payload.self), strings.Join(fmtAttrs(label(v.Node), opts.Highlight), ", "))
			if v.Payload.parent >= 0 {
				fmt.Fprintf(&edges, "  %q -> %q;\n", nodeID(v.Payload.parent), nodeID(v.Payload.self))
			}
			return false
		})

	// 2. Assemble the document
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	buf.Write(nodes.Bytes())
	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "n" + strconv.Itoa(i) }

func fmtAttrs(label string, highlight []string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if slices.Contains(highlight, label) {
		attrs = append(attrs, "fillcolor="+HighlightColor)
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg tag with one whose
// width and height equal the viewBox, so the image scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
