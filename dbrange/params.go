// Package dbrange implements the database adapter boundary: Cast/Dump/Load
// against PostgreSQL's wire range representation
// (github.com/jackc/pgx/v5/pgtype).
package dbrange

// Params are the parameters recognized by Cast/Dump/Load.
type Params struct {
	// DBType names the underlying wire type, e.g. "int8range", "numrange",
	// "daterange".
	DBType string
	// InnerType names the elemental codec used to dump/load each bound
	// value. It is always passed through verbatim to the caller-supplied
	// inner_dumper/inner_loader, including for every element range loaded
	// by LoadMulti, never hard-coded to a placeholder. Cast and CastMulti
	// call no inner codec, so they use it only in error messages.
	InnerType string
}
