package repository

import "github.com/tuanvumaihuynh/parts-inventory/internal/model"

// ExampleParts returns the example catalogue the service starts with.
func ExampleParts() []model.Part {
	return []model.Part{
		{ID: "O1", Name: "Oil Filter", PartType: "Engine", CarModel: "Toyota Camry 2020", Stock: 50, MinStockLevel: 20},
		{ID: "A2", Name: "AC Filter", PartType: "AC", CarModel: "Honda Civic 2018", Stock: 15, MinStockLevel: 20},
		{ID: "B3", Name: "Brake Pad Set", PartType: "Brake", CarModel: "Ford F-150 2022", Stock: 25, MinStockLevel: 20},
		{ID: "S4", Name: "Spark Plug (4-pack)", PartType: "Engine", CarModel: "Nissan Altima 2019", Stock: 10, MinStockLevel: 20},
		{ID: "W5", Name: "Wiper Blades (Front)", PartType: "Exterior", CarModel: "All Models", Stock: 30, MinStockLevel: 20},
		{ID: "A6", Name: "Air Filter", PartType: "Engine", CarModel: "Volkswagen Golf 2017", Stock: 22, MinStockLevel: 20},
		{ID: "C7", Name: "Cabin Filter", PartType: "AC", CarModel: "Mercedes-Benz C-Class 2021", Stock: 18, MinStockLevel: 20},
	}
}
