// Package export renders ellipse shapes and linkage merge events as GeoJSON
// feature collections built with github.com/paulmach/orb/geojson.
//
// Coordinates are the layout plane as-is; no projection is applied.
package export
