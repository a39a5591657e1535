// Package payload reads and navigates object-shaped validation payloads.
//
// Payloads arrive as JSON or YAML documents and are held as Map, a plain
// map[string]any. Validators read only the fields they care about through
// Lookup and String, or decode a typed view with Decode.
package payload
