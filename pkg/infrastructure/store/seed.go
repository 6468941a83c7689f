package store

import (
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

// Seed data: the fixed milk catalog plus a demo roster the owner screens
// start from.

func seedBrands() []model.MilkBrand {
	return []model.MilkBrand{
		{ID: "b1", Name: "Sharma Dairy", Logo: "🐄", Description: "Local farm-fresh dairy, delivering since 1998"},
		{ID: "b2", Name: "Nandini Farms", Logo: "🌾", Description: "Organic feed, grass-raised cattle"},
	}
}

func seedProducts() []model.MilkProduct {
	return []model.MilkProduct{
		{ID: "1", BrandID: "b1", Name: "Cow Milk", Type: model.MilkCow, PricePerLiterPaise: 6000, Description: "Fresh A2 cow milk, rich in nutrients", Icon: "🐄"},
		{ID: "2", BrandID: "b1", Name: "Buffalo Milk", Type: model.MilkBuffalo, PricePerLiterPaise: 7000, Description: "Creamy buffalo milk, high fat content", Icon: "🐃"},
		{ID: "3", BrandID: "b2", Name: "Toned Milk", Type: model.MilkToned, PricePerLiterPaise: 5500, Description: "Low fat milk for health conscious", Icon: "🥛"},
		{ID: "4", BrandID: "b2", Name: "Full Cream", Type: model.MilkFullCream, PricePerLiterPaise: 6500, Description: "Rich full cream milk", Icon: "✨"},
	}
}

func seedCustomers() []model.Customer {
	everyDay := []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	exceptSunday := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	weekdaysOnly := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

	return []model.Customer{
		{ID: "c1", UserID: "u1", Name: "Riya Sharma", Phone: "+91 98765 43210", AddressID: "a1", Subscription: &model.Subscription{
			ID: "s1", CustomerID: "c1", AddressID: "a1", MilkProductID: "1",
			QuantityPerDeliveryML: 1000, DaysOfWeek: everyDay,
			StartDate: "2024-01-01", IsActive: true, PaymentMethod: model.PayCash,
		}},
		{ID: "c2", UserID: "u2", Name: "Aditya Patel", Phone: "+91 98765 43211", AddressID: "a2", Subscription: &model.Subscription{
			ID: "s2", CustomerID: "c2", AddressID: "a2", MilkProductID: "2",
			QuantityPerDeliveryML: 1500, DaysOfWeek: exceptSunday,
			StartDate: "2024-01-01", IsActive: true, PaymentMethod: model.PayUPI,
		}},
		{ID: "c3", UserID: "u3", Name: "Priya Singh", Phone: "+91 98765 43212", AddressID: "a3", Subscription: &model.Subscription{
			ID: "s3", CustomerID: "c3", AddressID: "a3", MilkProductID: "1",
			QuantityPerDeliveryML: 2000, DaysOfWeek: everyDay,
			StartDate: "2024-01-01", IsActive: true, PaymentMethod: model.PayCash,
		}},
		{ID: "c4", UserID: "u4", Name: "Rahul Kumar", Phone: "+91 98765 43213", AddressID: "a4", Subscription: &model.Subscription{
			ID: "s4", CustomerID: "c4", AddressID: "a4", MilkProductID: "3",
			QuantityPerDeliveryML: 500, DaysOfWeek: everyDay,
			StartDate: "2024-01-01", IsActive: true, PaymentMethod: model.PayUPI,
		}},
		{ID: "c5", UserID: "u5", Name: "Sneha Gupta", Phone: "+91 98765 43214", AddressID: "a5", Subscription: &model.Subscription{
			ID: "s5", CustomerID: "c5", AddressID: "a5", MilkProductID: "2",
			QuantityPerDeliveryML: 1000, DaysOfWeek: weekdaysOnly,
			StartDate: "2024-01-01", IsActive: true, PaymentMethod: model.PayBankTransfer,
		}},
	}
}
