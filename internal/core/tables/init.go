// Package tables registers the built-in storefront list pages with the core
// registry. Import this package to ensure all tables are registered.
//
// Pages are grouped by the role that uses them: Admin, Tailor and Client.
// Each file's init() registers the pages of one role.
package tables

// Group names.
const (
	GroupAdmin  = "Admin"
	GroupTailor = "Tailor"
	GroupClient = "Client"
)
