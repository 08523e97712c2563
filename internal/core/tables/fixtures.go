package tables

import (
	"time"

	"github.com/JonMunkholm/atelier/internal/core"
	"github.com/JonMunkholm/atelier/internal/table"
)

// LoadFixtures fills src with the demo records served when no database is
// configured.
func LoadFixtures(src *core.MemorySource) {
	for source, records := range Fixtures() {
		src.Set(source, records)
	}
}

// Fixtures returns demo records keyed by source name.
func Fixtures() map[string][]table.Record {
	return map[string][]table.Record{
		"tailors": tailorFixtures(),
		"clients": clientFixtures(),
		"orders":  orderFixtures(),
		"fabrics": fabricFixtures(),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tailorFixtures() []table.Record {
	return []table.Record{
		{"firstName": "Awa", "lastName": "Diop", "workshop": "Atelier Awa", "city": "Dakar", "specialty": "Boubou", "rating": 4.8, "joinedAt": day(2021, 3, 12)},
		{"firstName": "Moussa", "lastName": "Ndiaye", "workshop": "Coupe Royale", "city": "Thiès", "specialty": "Suits", "rating": 4.5, "joinedAt": day(2019, 11, 2)},
		{"firstName": "Fatou", "lastName": "Sow", "workshop": "Fil d'Or", "city": "Dakar", "specialty": "Wedding dresses", "rating": 4.9, "joinedAt": day(2022, 6, 20)},
		{"firstName": "Omar", "lastName": "Ba", "workshop": "Ba & Fils", "city": "Saint-Louis", "specialty": "Kaftans", "rating": 4.1, "joinedAt": day(2018, 1, 8)},
		{"firstName": "Aminata", "lastName": "Fall", "workshop": "Maison Fall", "city": "Touba", "specialty": "Children", "rating": 3.9, "joinedAt": day(2023, 9, 1)},
		{"firstName": "Ibrahima", "lastName": "Gueye", "workshop": "Gueye Couture", "city": "Dakar", "specialty": "Suits", "rating": 4.6, "joinedAt": day(2020, 4, 17)},
	}
}

func clientFixtures() []table.Record {
	return []table.Record{
		{"firstName": "Khady", "lastName": "Mbaye", "email": "khady@example.com", "phone": "+221 77 100 2030", "city": "Dakar", "orderCount": 4},
		{"firstName": "Cheikh", "lastName": "Sarr", "email": "cheikh@example.com", "phone": "+221 76 200 3040", "city": "Thiès", "orderCount": 1},
		{"firstName": "Mariama", "lastName": "Cissé", "email": "mariama@example.com", "phone": "+221 78 300 4050", "city": "Dakar", "orderCount": 7},
		{"firstName": "Lamine", "lastName": "Faye", "email": "lamine@example.com", "phone": "", "city": "Ziguinchor", "orderCount": 0},
		{"firstName": "Ndeye", "lastName": "Kane", "email": "ndeye@example.com", "phone": "+221 70 400 5060", "city": "Saint-Louis", "orderCount": 2},
	}
}

func client(first, last, city string) map[string]any {
	return map[string]any{"firstName": first, "lastName": last, "city": city}
}

func items(names ...string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = map[string]any{"garment": n}
	}
	return out
}

func orderFixtures() []table.Record {
	return []table.Record{
		{"reference": "CMD-1001", "client": client("Khady", "Mbaye", "Dakar"), "items": items("Boubou", "Headwrap"), "status": "in_progress", "total": 85000.0, "dueDate": day(2024, 7, 1)},
		{"reference": "CMD-1002", "client": client("Cheikh", "Sarr", "Thiès"), "items": items("Suit"), "status": "delivered", "total": 120000.0, "dueDate": day(2024, 5, 15)},
		{"reference": "CMD-1003", "client": client("Mariama", "Cissé", "Dakar"), "items": items("Wedding dress"), "status": "in_progress", "total": 350000.0, "dueDate": day(2024, 9, 30)},
		{"reference": "CMD-1004", "client": client("Mariama", "Cissé", "Dakar"), "items": items("Kaftan", "Kaftan"), "status": "pending", "total": 60000.0, "dueDate": day(2024, 8, 12)},
		{"reference": "CMD-1005", "client": client("Ndeye", "Kane", "Saint-Louis"), "items": items("Skirt", "Blouse"), "status": "in_progress", "total": 45000.0, "dueDate": day(2024, 6, 20)},
		{"reference": "CMD-1006", "client": client("Khady", "Mbaye", "Dakar"), "items": items("Children's boubou"), "status": "cancelled", "total": 25000.0, "dueDate": day(2024, 4, 2)},
		{"reference": "CMD-1007", "client": client("Lamine", "Faye", "Ziguinchor"), "items": items("Suit", "Shirt"), "status": "pending", "total": 140000.0, "dueDate": day(2024, 10, 5)},
	}
}

func fabricFixtures() []table.Record {
	return []table.Record{
		{"name": "Bazin Riche", "material": "Cotton damask", "color": "Indigo", "pricePerMeter": 7500.0, "stockMeters": 120},
		{"name": "Wax Hollandais", "material": "Cotton", "color": "Multicolor", "pricePerMeter": 5000.0, "stockMeters": 300},
		{"name": "Soie Sauvage", "material": "Silk", "color": "Ivory", "pricePerMeter": 18000.0, "stockMeters": 40},
		{"name": "Lin Lavé", "material": "Linen", "color": "Sand", "pricePerMeter": 9000.0, "stockMeters": 75},
		{"name": "Getzner", "material": "Cotton damask", "color": "White", "pricePerMeter": 12000.0, "stockMeters": 0},
		{"name": "Kente", "material": "Cotton", "color": "Gold", "pricePerMeter": 11000.0, "stockMeters": 25},
		{"name": "Velours", "material": "Velvet", "color": "Burgundy", "pricePerMeter": 14000.0, "stockMeters": 18},
	}
}
