// Package core provides the list-page service of the storefront.
//
// It sits between transports and the table engine in [table]. A list page is
// registered once as a [TableDefinition]; the [Service] loads its records
// from a [RecordSource], keeps per-viewer state in a [SessionStore] and runs
// the engine to produce pages and exports.
//
// # Table Registry
//
// Built-in list pages register in init functions of the tables package.
// Additional pages can be loaded at startup from a catalog file:
//
//	core.Register(core.TableDefinition{
//	    Info:         core.TableInfo{Key: "fabrics", Group: "Tailor", Label: "Fabrics"},
//	    Columns:      table.Columns{{ID: "name", Header: "Name", Accessor: table.Field("name"), Sortable: true}},
//	    SearchFields: []string{"name"},
//	})
//
// # Sessions
//
// A session is one open table instance. Its state only changes through a
// [Transition] applied by [Service.Apply]; views read a snapshot of the state
// so concurrent requests on the same session never see a partial change.
// Idle sessions expire after the configured TTL; see [Service.StartSessionSweeper].
//
// # Exports
//
// Exports write the filtered and sorted rows without pagination. An
// [ExportLimiter] caps how many run at once.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each category has a code for support reference:
//
//   - TBL001-TBL002: Unknown table, malformed definition
//   - SES001-SES002: Expired session, session limit
//   - SRC001-SRC002: Record loading, database connection
//   - EXP001: All export slots busy
//   - REQ001-REQ002, RATE001: Request cancelled, timed out, rate limited
package core
