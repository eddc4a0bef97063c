// Package pkg provides the core libraries of linkdraw.
//
// # Overview
//
// linkdraw draws directed connectors: a line or curve between two or more
// points, optional shape markers at its endpoints and an optional text label
// placed relative to the line. The pkg directory is organized into four
// areas:
//
//  1. Geometry and scene - [geom], [scene], [style], [symbol], [anim]
//  2. Connectors - [connector], [linkset], [data]
//  3. Pipeline - [io], [placement], [pipeline], [render]
//  4. Infrastructure - [cache], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through linkdraw:
//
//	Dataset file (JSON, TOML, YAML)
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [placement] package (Graphviz positions for unplaced nodes)
//	         ↓
//	    [data] package (records + merged series/item style models)
//	         ↓
//	    [linkset] package (one [connector] element per record, per-frame layout)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
// Draw a dataset with the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dataset: "flows.yaml",
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// Or drive the connectors directly:
//
//	list, _ := data.NewList(ds)
//	set := linkset.New(logger)
//	set.Update(ctx, list)
//	set.Frame(ctx)
//	svg := sink.RenderSVG(scene.Root(set.Group()), 800, 600)
//
// # Main Packages
//
// [connector] - The connector element: line, two endpoint markers and a
// label, with marker rotation along the curve tangent, inverse scaling under
// zoomed ancestors, label placement policies and hover (emphasis) state.
//
// [linkset] - Reconciles connector elements with a data source by index and
// lays them out each frame.
//
// [geom] - Points, affine matrices and the polyline/quadratic curve with its
// percent-based reveal.
//
// [scene] - The retained scene tree (groups, paths, texts) the connectors
// build and the sinks draw.
//
// [pipeline] - The load → place → frame → render pipeline shared by the CLI
// and the preview server, with placement and artifact caching.
//
// [render/sink] - Output encoders. SVG is written directly, PNG is rasterized
// with gogpu/gg, PDF goes through rsvg-convert.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/geom
// [scene]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/scene
// [style]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/style
// [symbol]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/symbol
// [anim]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/anim
// [connector]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/connector
// [linkset]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/linkset
// [data]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/data
// [io]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/io
// [placement]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/placement
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/render/sink
// [cache]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/linkdraw/pkg/buildinfo
package pkg
