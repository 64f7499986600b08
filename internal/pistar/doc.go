// Package pistar reads goal models exported by the piStar editor. The
// export is JSON: nodes live inside actors (or in the top-level orphans
// list) and annotations are kept in each node's customProperties object.
package pistar
