package main

import (
	"emall/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ShopModel{},
		model.ProductModel{},
		model.SaleModel{},
		model.SaleDetailModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
