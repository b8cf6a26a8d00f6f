// Package render turns search results into terminal output.
//
// # Overview
//
// [Table] produces the default human-readable view: a header row, a rule of
// dashes, then one row per match with a zero-based index. Column widths are
// fixed and do not depend on the content; a cell longer than its column
// pushes the following columns to the right instead of being cut.
//
//	fmt.Print(render.Table(res))
//
//	#    Name                                               Description
//	--------------------------------------------------------------------------------------------------------------
//	0    https://github.com/serde-rs/json                   Strongly typed JSON library for Rust
//	1    https://github.com/tokio-rs/tokio                  A runtime for writing reliable asynchronous applications
//
// Pass [WithoutDescription] to render only the index and Name columns.
//
// [JSON] writes the same result as indented JSON for scripting.
package render
