// codegen turns generated Go source text into DST nodes and splices them into
// existing files. It is the one place that decides how generated nodes are
// spaced and commented relative to the nodes around them.
//
// Inputs are never shared between outputs: every node returned here is freshly
// parsed, since a node that appears twice in a DST tree makes the restorer
// panic.
package codegen
