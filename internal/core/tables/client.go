package tables

import (
	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

func init() {
	registerOpenOrders()
}

// registerOpenOrders is the client-facing order list. It reads the same
// source as the tailor page but starts filtered to orders still in progress.
func registerOpenOrders() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "my_orders",
			Group: GroupClient,
			Label: "My Orders",
		},
		Source:       "orders",
		Columns:      orderColumns(),
		SearchFields: []string{"reference", "client.firstName", "client.lastName"},
		InitialFilters: []table.FilterConfig{
			{Field: "status", Operator: table.OpEquals, Value: "in_progress"},
		},
		NestedFields: true,
	})
}
