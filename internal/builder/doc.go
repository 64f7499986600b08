/*
Package builder is responsible for the construction of the goal model graph. It
acts as the bridge between the raw document records (defined in the 'config'
package) and the validator.

The primary artifact produced by this package is an ordered *model.Graph.

The graph construction is a multi-phase process:

 1. Node Ingest: every raw node record is checked for required fields, its type
    token is resolved through the registry, the short name is extracted from
    its label and its annotations are classified. This phase may run on a
    bounded pool of workers; the reported error is always that of the first
    failing record in document order.

 2. Edge Resolution: every link is resolved against the ingested vertices.
    Refinement links establish the parent/child relation, with the link
    source as the child and the target as the parent.

 3. Canonical Ordering: vertices are sorted by their short name (goals first,
    then by numeric suffix) and every index held in parents, children and
    edges is remapped to the new positions.

Construction is all-or-nothing: the builder either returns a complete graph or
an error, never a partial graph. Structural and semantic checks are left to
the 'validator' package.
*/
package builder
