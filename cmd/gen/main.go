package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CustomerProfileModel{},
		model.MerchantProfileModel{},
		model.BusinessModel{},
		model.BusinessDraftModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ReviewModel{},
		model.PromoCodeModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
		model.LoyaltyAccountModel{},
		model.PaymentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
