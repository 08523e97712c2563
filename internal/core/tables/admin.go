package tables

import (
	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

func init() {
	registerTailors()
	registerClients()
}

func registerTailors() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "tailors",
			Group: GroupAdmin,
			Label: "Tailors",
		},
		Columns: table.Columns{
			{ID: "name", Header: "Name", Accessor: fullName("firstName", "lastName"), Sortable: true, Width: "200px"},
			{ID: "workshop", Header: "Workshop", Accessor: table.Field("workshop"), Sortable: true},
			{ID: "city", Header: "City", Accessor: table.Field("city"), Sortable: true, Width: "140px"},
			{ID: "specialty", Header: "Specialty", Accessor: table.Field("specialty")},
			{ID: "rating", Header: "Rating", Accessor: table.Field("rating"), Sortable: true, Width: "80px", CompareAs: table.CompareNumber},
			{ID: "joined", Header: "Joined", Accessor: table.Field("joinedAt"), Sortable: true, CompareAs: table.CompareDate},
		},
		SearchFields: []string{"firstName", "lastName", "workshop", "city"},
	})
}

func registerClients() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "clients",
			Group: GroupAdmin,
			Label: "Clients",
		},
		Columns: table.Columns{
			{ID: "name", Header: "Name", Accessor: fullName("firstName", "lastName"), Sortable: true, Width: "200px"},
			{ID: "email", Header: "Email", Accessor: table.Field("email"), Sortable: true},
			{ID: "phone", Header: "Phone", Accessor: table.Field("phone"), Width: "140px"},
			{ID: "city", Header: "City", Accessor: table.Field("city"), Sortable: true},
			{ID: "orders", Header: "Orders", Accessor: table.Field("orderCount"), Sortable: true, Width: "80px"},
		},
		SearchFields: []string{"firstName", "lastName", "email", "city"},
	})
}
