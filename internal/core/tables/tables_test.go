package tables

import (
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/atelier/internal/config"
	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

func TestBuiltinTablesRegistered(t *testing.T) {
	want := map[string]string{
		"tailors":   GroupAdmin,
		"clients":   GroupAdmin,
		"orders":    GroupTailor,
		"fabrics":   GroupTailor,
		"my_orders": GroupClient,
	}

	for key, group := range want {
		def, ok := core.Get(key)
		if !ok {
			t.Errorf("table %s not registered", key)
			continue
		}
		if def.Info.Group != group {
			t.Errorf("%s group = %q, want %q", key, def.Info.Group, group)
		}
		if len(def.Info.Columns) != len(def.Columns) {
			t.Errorf("%s Info.Columns length = %d, want %d", key, len(def.Info.Columns), len(def.Columns))
		}
	}
}

func TestFixturesCoverSources(t *testing.T) {
	fixtures := Fixtures()
	for _, def := range core.All() {
		if len(fixtures[def.SourceName()]) == 0 {
			t.Errorf("no fixtures for source %q of table %s", def.SourceName(), def.Info.Key)
		}
	}
}

func TestClientLabel(t *testing.T) {
	tests := []struct {
		name string
		rec  table.Record
		want string
	}{
		{"with city", table.Record{"client": client("Awa", "Diop", "Dakar")}, "Awa Diop (Dakar)"},
		{"without city", table.Record{"client": client("Awa", "Diop", "")}, "Awa Diop"},
		{"missing client", table.Record{}, ""},
		{"wrong shape", table.Record{"client": "Awa"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clientLabel(tt.rec); got != tt.want {
				t.Errorf("clientLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	acc := fullName("firstName", "lastName")
	if got := acc(table.Record{"firstName": "Omar", "lastName": "Ba"}); got != "Omar Ba" {
		t.Errorf("fullName() = %q, want %q", got, "Omar Ba")
	}
	if got := acc(table.Record{"lastName": "Ba"}); got != "Ba" {
		t.Errorf("fullName() missing first = %q, want %q", got, "Ba")
	}
}

func TestGarmentsExportAsJSON(t *testing.T) {
	rec := table.Record{"items": items("Suit", "Shirt")}
	if got := table.ExportValue(garments(rec)); got != `["Suit","Shirt"]` {
		t.Errorf("ExportValue(garments) = %s, want %s", got, `["Suit","Shirt"]`)
	}
	if got := table.ExportValue(garments(table.Record{})); got != `[]` {
		t.Errorf("ExportValue(no garments) = %s, want []", got)
	}
}

func newFixtureService(t *testing.T, nested bool) *core.Service {
	t.Helper()
	src := core.NewMemorySource()
	LoadFixtures(src)

	svc, err := core.NewService(src, &config.Config{Table: config.TableConfig{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		SessionTTL:      time.Minute,
		MaxSessions:     10,
		NestedSearch:    nested,
	}})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func references(res *core.TableDataResult) []string {
	out := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		out[i], _ = r["reference"].(string)
	}
	return out
}

// Dotted search fields only match when nested resolution is enabled.
func TestOrdersNestedSearch(t *testing.T) {
	state := table.NewState(10, nil).SetSearch("cissé")

	direct, err := newFixtureService(t, false).Query(context.Background(), "orders", state)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if direct.TotalFiltered != 0 {
		t.Errorf("direct resolution TotalFiltered = %d, want 0", direct.TotalFiltered)
	}

	nested, err := newFixtureService(t, true).Query(context.Background(), "orders", state)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if nested.TotalFiltered != 2 {
		t.Errorf("nested resolution TotalFiltered = %d, want 2", nested.TotalFiltered)
	}
}

func TestMyOrdersStartsFiltered(t *testing.T) {
	svc := newFixtureService(t, false)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, "my_orders")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := svc.Apply(ctx, sess.ID, core.ToggleSort("due")); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	res, err := svc.View(ctx, sess.ID)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	got := references(res)
	want := []string{"CMD-1005", "CMD-1001", "CMD-1003"}
	if len(got) != len(want) {
		t.Fatalf("references = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("references[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTailorsSortByRatingDesc(t *testing.T) {
	svc := newFixtureService(t, false)

	state := table.NewState(3, nil)
	state.Sort = &table.SortConfig{Key: "rating", Direction: table.Desc}

	res, err := svc.Query(context.Background(), "tailors", state)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []string{"Fatou Sow", "Awa Diop", "Ibrahima Gueye"}
	for i, w := range want {
		if res.Rows[i]["name"] != w {
			t.Errorf("row %d name = %v, want %s", i, res.Rows[i]["name"], w)
		}
	}
	if res.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", res.TotalPages)
	}
}
