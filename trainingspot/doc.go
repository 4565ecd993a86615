// Package trainingspot ranks candidate world objects (e.g. resource nodes)
// by path cost from a reference point, or by banking roundtrip cost, using
// a region-scoped spatial index and a 7-day persistent JSON cache keyed by
// region, object-id set, and banking mode.
package trainingspot
