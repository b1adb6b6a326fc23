package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedRequest ссылается на клиента и объект по индексу в наборе.
type SeedRequest struct {
	ClientIndex   int
	PropertyIndex int
	Type          RequestType
	Amount        decimal.Decimal
	DateCreated   Date
}

// SeedDataset - начальные данные для пустого хранилища.
type SeedDataset struct {
	Clients    []Client
	Properties []Property
	Requests   []SeedRequest
}

// DefaultSeed возвращает встроенный демонстрационный набор.
func DefaultSeed() SeedDataset {
	return SeedDataset{
		Clients: []Client{
			{FullName: "Иванов Иван Иванович", PassportNumber: "4000 123456", Phone: "79001112233"},
			{FullName: "Петрова Анна Сергеевна", PassportNumber: "4001 654321", Phone: "79002223344"},
			{FullName: "Сидоров Павел Дмитриевич", PassportNumber: "4002 987654", Phone: "79003334455"},
			{FullName: "Кузнецова Мария Александровна", PassportNumber: "4003 456789", Phone: "79004445566"},
			{FullName: "Смирнов Алексей Игоревич", PassportNumber: "4004 321987", Phone: "79005556677"},
			{FullName: "Васильев Николай Петрович", PassportNumber: "4005 789123", Phone: "79006667788"},
			{FullName: "Морозова Екатерина Олеговна", PassportNumber: "4006 147258", Phone: "79007778899"},
			{FullName: "Громов Артём Сергеевич", PassportNumber: "4007 369258", Phone: "79008889900"},
			{FullName: "Лебедева Дарья Андреевна", PassportNumber: "4008 951753", Phone: "79009990011"},
			{FullName: "Попов Дмитрий Валерьевич", PassportNumber: "4009 753159", Phone: "79001002030"},
		},
		Properties: []Property{
			{CadastralNumber: "77:01:0004012:1234", Address: "г. Москва, ул. Ленина, д. 10", Floors: 10, TotalArea: 75.5, Rooms: 3, CeilingHeight: 2.7, FloorNumber: 5, Type: PropertyTypeApartment, Purpose: PropertyPurposeResidential},
			{CadastralNumber: "77:02:0001111:5678", Address: "г. Москва, пр-т Мира, д. 45", Floors: 16, TotalArea: 120.0, Rooms: 4, CeilingHeight: 3.0, FloorNumber: 10, Type: PropertyTypeApartment, Purpose: PropertyPurposeResidential},
			{CadastralNumber: "78:04:0002222:2222", Address: "г. Санкт-Петербург, Невский пр-т, д. 100", Floors: 5, TotalArea: 250.0, Rooms: 10, CeilingHeight: 3.2, FloorNumber: 1, HasEncumbrance: true, Type: PropertyTypeOffice, Purpose: PropertyPurposeCommercial},
			{CadastralNumber: "77:07:0009999:3333", Address: "г. Москва, ул. Строителей, д. 7", Floors: 2, TotalArea: 180.0, Rooms: 6, CeilingHeight: 2.9, FloorNumber: 2, Type: PropertyTypeHouse, Purpose: PropertyPurposeResidential},
			{CadastralNumber: "50:10:0011222:4444", Address: "МО, г. Химки, ул. Кирова, д. 3", Floors: 1, TotalArea: 1000.0, Rooms: 1, CeilingHeight: 4.5, FloorNumber: 1, HasEncumbrance: true, Type: PropertyTypeWarehouse, Purpose: PropertyPurposeCommercial},
			{CadastralNumber: "77:03:0005555:5555", Address: "г. Москва, ул. Пушкина, д. 25", Floors: 9, TotalArea: 65.0, Rooms: 2, CeilingHeight: 2.6, FloorNumber: 3, Type: PropertyTypeApartment, Purpose: PropertyPurposeResidential},
			{CadastralNumber: "78:06:0008888:6666", Address: "г. Санкт-Петербург, Литейный пр-т, д. 12", Floors: 8, TotalArea: 300.0, Rooms: 8, CeilingHeight: 3.1, FloorNumber: 2, Type: PropertyTypeOffice, Purpose: PropertyPurposeCommercial},
			{CadastralNumber: "77:09:0003333:7777", Address: "г. Москва, ул. Новая, д. 3", Floors: 3, TotalArea: 200.0, Rooms: 5, CeilingHeight: 3.0, FloorNumber: 1, HasEncumbrance: true, Type: PropertyTypeHouse, Purpose: PropertyPurposeResidential},
			{CadastralNumber: "50:20:0007777:8888", Address: "МО, г. Одинцово, ул. Гагарина, д. 8", Floors: 1, TotalArea: 1500.0, Rooms: 1, CeilingHeight: 5.0, FloorNumber: 1, Type: PropertyTypeWarehouse, Purpose: PropertyPurposeCommercial},
			{CadastralNumber: "77:12:0006666:9999", Address: "г. Москва, пр-т Вернадского, д. 90", Floors: 25, TotalArea: 95.0, Rooms: 3, CeilingHeight: 2.8, FloorNumber: 20, Type: PropertyTypeApartment, Purpose: PropertyPurposeResidential},
		},
		Requests: []SeedRequest{
			{0, 0, RequestTypeBuy, decimal.NewFromInt(12_500_000), NewDate(2025, time.September, 15)},
			{1, 2, RequestTypeSell, decimal.NewFromInt(25_000_000), NewDate(2025, time.September, 18)},
			{2, 1, RequestTypeBuy, decimal.NewFromInt(14_000_000), NewDate(2025, time.September, 20)},
			{3, 3, RequestTypeSell, decimal.NewFromInt(19_000_000), NewDate(2025, time.September, 22)},
			{4, 4, RequestTypeSell, decimal.NewFromInt(30_000_000), NewDate(2025, time.September, 25)},
			{5, 5, RequestTypeBuy, decimal.NewFromInt(9_500_000), NewDate(2025, time.September, 26)},
			{6, 6, RequestTypeSell, decimal.NewFromInt(22_000_000), NewDate(2025, time.September, 27)},
			{7, 7, RequestTypeBuy, decimal.NewFromInt(16_000_000), NewDate(2025, time.September, 28)},
			{8, 8, RequestTypeSell, decimal.NewFromInt(28_000_000), NewDate(2025, time.September, 29)},
			{9, 9, RequestTypeBuy, decimal.NewFromInt(11_000_000), NewDate(2025, time.September, 30)},
			{0, 5, RequestTypeBuy, decimal.NewFromInt(10_200_000), NewDate(2025, time.October, 2)},
			{1, 6, RequestTypeSell, decimal.NewFromInt(23_500_000), NewDate(2025, time.October, 3)},
		},
	}
}
