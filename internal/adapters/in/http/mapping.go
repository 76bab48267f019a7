package http

import (
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toLocation(l servers.Location) (kernel.Location, error) {
	return kernel.NewLocation(l.Latitude, l.Longitude)
}

func fromLocation(l kernel.Location) servers.Location {
	return servers.Location{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toFoodDetails(
	name string,
	description *string,
	price int64,
	currency *servers.Currency,
	pickup servers.Location,
) (commands.FoodDetails, error) {
	location, err := toLocation(pickup)
	if err != nil {
		return commands.FoodDetails{}, err
	}

	code := ""
	if currency != nil {
		code = *currency
	}
	parsed, err := food.ParseCurrency(code)
	if err != nil {
		return commands.FoodDetails{}, err
	}

	details := commands.FoodDetails{
		Name:     name,
		Price:    price,
		Currency: parsed,
		Pickup:   location,
	}
	if description != nil {
		details.Description = *description
	}
	return details, nil
}

func toFood(view queries.FoodView) servers.Food {
	media := view.Media
	if media == nil {
		media = []string{}
	}
	return servers.Food{
		Id:            view.ID.Bytes(),
		Name:          view.Name,
		Description:   view.Description,
		Price:         view.Price,
		Currency:      view.Currency,
		Pickup:        fromLocation(view.Pickup),
		AverageRating: view.AverageRating,
		RatedUsers:    view.RatedUsers,
		Media:         media,
	}
}

var orderStatuses = map[order.Status]servers.OrderStatus{
	order.Pending:   servers.OrderStatusPending,
	order.Assigned:  servers.OrderStatusAssigned,
	order.InTransit: servers.OrderStatusInTransit,
}

func toOrder(view queries.OrderView) servers.Order {
	o := servers.Order{
		Id:              view.ID.Bytes(),
		UserId:          view.UserID.Bytes(),
		FoodId:          view.FoodID.Bytes(),
		Destination:     fromLocation(view.Destination),
		Quantity:        view.Quantity,
		EstimateMinutes: view.EstimateMinutes,
		Status:          orderStatuses[view.Status],
		CreatedAt:       view.CreatedAt,
		Deadline:        view.Deadline(),
	}
	if view.StaffID != nil {
		staffID := view.StaffID.Bytes()
		o.StaffId = &staffID
	}
	return o
}

func toDeliveryReport(report queries.DeliveryReport) servers.DeliveryReport {
	records := make([]servers.DeliveryRecord, len(report.Records))
	for i, r := range report.Records {
		records[i] = servers.DeliveryRecord{
			Id:              r.ID.Bytes(),
			StaffId:         r.StaffID.Bytes(),
			FoodId:          r.FoodID.Bytes(),
			Quantity:        r.Quantity,
			TotalIncome:     r.TotalIncome,
			TotalIncomeText: delivery.FormatIncome(r.TotalIncome),
			DeliveredAt:     r.DeliveredAt,
		}
	}
	return servers.DeliveryReport{
		Year:            report.Period.Year,
		Month:           int(report.Period.Month),
		Records:         records,
		TotalIncome:     report.TotalIncome,
		TotalIncomeText: delivery.FormatIncome(report.TotalIncome),
	}
}
