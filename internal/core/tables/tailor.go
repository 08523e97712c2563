package tables

import (
	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

func init() {
	registerOrders()
	registerFabrics()
}

// orderColumns is shared by the tailor and client order pages.
func orderColumns() table.Columns {
	return table.Columns{
		{ID: "reference", Header: "Reference", Accessor: table.Field("reference"), Sortable: true, Width: "120px"},
		{ID: "client", Header: "Client", Accessor: clientLabel, Sortable: true, Width: "220px"},
		{ID: "garments", Header: "Garments", Accessor: garments},
		{ID: "status", Header: "Status", Accessor: table.Field("status"), Sortable: true, Width: "110px"},
		{ID: "total", Header: "Total", Accessor: table.Field("total"), Sortable: true, CompareAs: table.CompareNumber},
		{ID: "due", Header: "Due", Accessor: table.Field("dueDate"), Sortable: true},
	}
}

func registerOrders() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "orders",
			Group: GroupTailor,
			Label: "Orders",
		},
		Columns: orderColumns(),
		// Client fields live on a nested object; only resolved when the
		// table runs with nested field resolution.
		SearchFields: []string{"reference", "status", "client.firstName", "client.lastName"},
	})
}

func registerFabrics() {
	core.Register(core.TableDefinition{
		Info: core.TableInfo{
			Key:   "fabrics",
			Group: GroupTailor,
			Label: "Fabrics",
		},
		Columns: table.Columns{
			{ID: "name", Header: "Name", Accessor: table.Field("name"), Sortable: true, Width: "180px"},
			{ID: "material", Header: "Material", Accessor: table.Field("material"), Sortable: true},
			{ID: "color", Header: "Color", Accessor: table.Field("color"), Sortable: true},
			{ID: "price", Header: "Price / m", Accessor: table.Field("pricePerMeter"), Sortable: true, Width: "100px"},
			{ID: "stock", Header: "Stock (m)", Accessor: table.Field("stockMeters"), Sortable: true, Width: "100px"},
		},
		SearchFields: []string{"name", "material", "color"},
		PageSize:     25,
	})
}
