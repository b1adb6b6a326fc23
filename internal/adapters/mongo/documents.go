package mongo_adapter

import (
	"fmt"
	"time"

	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type clientDoc struct {
	ID             int    `bson:"_id"`
	FullName       string `bson:"full_name"`
	PassportNumber string `bson:"passport_number"`
	Phone          string `bson:"phone"`
}

func newClientDoc(c domain.Client) clientDoc {
	return clientDoc{ID: c.ID, FullName: c.FullName, PassportNumber: c.PassportNumber, Phone: c.Phone}
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{ID: d.ID, FullName: d.FullName, PassportNumber: d.PassportNumber, Phone: d.Phone}
}

type propertyDoc struct {
	ID              int     `bson:"_id"`
	CadastralNumber string  `bson:"cadastral_number"`
	Address         string  `bson:"address"`
	Floors          int     `bson:"floors"`
	TotalArea       float64 `bson:"total_area"`
	Rooms           int     `bson:"rooms"`
	CeilingHeight   float64 `bson:"ceiling_height"`
	FloorNumber     int     `bson:"floor_number"`
	HasEncumbrance  bool    `bson:"has_encumbrance"`
	Type            string  `bson:"property_type"`
	Purpose         string  `bson:"purpose"`
}

func newPropertyDoc(p domain.Property) propertyDoc {
	return propertyDoc{
		ID:              p.ID,
		CadastralNumber: p.CadastralNumber,
		Address:         p.Address,
		Floors:          p.Floors,
		TotalArea:       p.TotalArea,
		Rooms:           p.Rooms,
		CeilingHeight:   p.CeilingHeight,
		FloorNumber:     p.FloorNumber,
		HasEncumbrance:  p.HasEncumbrance,
		Type:            string(p.Type),
		Purpose:         string(p.Purpose),
	}
}

func (d propertyDoc) toDomain() domain.Property {
	return domain.Property{
		ID:              d.ID,
		CadastralNumber: d.CadastralNumber,
		Address:         d.Address,
		Floors:          d.Floors,
		TotalArea:       d.TotalArea,
		Rooms:           d.Rooms,
		CeilingHeight:   d.CeilingHeight,
		FloorNumber:     d.FloorNumber,
		HasEncumbrance:  d.HasEncumbrance,
		Type:            domain.PropertyType(d.Type),
		Purpose:         domain.PropertyPurpose(d.Purpose),
	}
}

// requestDoc хранит ссылки по ID. Необязательные поля пишутся только если заданы.
type requestDoc struct {
	ID          int                   `bson:"_id"`
	ClientID    int                   `bson:"client_id"`
	PropertyID  int                   `bson:"property_id"`
	Type        *string               `bson:"request_type,omitempty"`
	Amount      *primitive.Decimal128 `bson:"amount,omitempty"`
	DateCreated *time.Time            `bson:"date_created,omitempty"`
}

func newRequestDoc(id int, input domain.RequestInput) (requestDoc, error) {
	doc := requestDoc{ID: id, ClientID: input.ClientID, PropertyID: input.PropertyID}
	if input.Type != nil {
		s := string(*input.Type)
		doc.Type = &s
	}
	if input.Amount != nil {
		d, err := primitive.ParseDecimal128(input.Amount.String())
		if err != nil {
			return requestDoc{}, fmt.Errorf("%w: amount %s does not fit decimal128", domain.ErrInvalidInput, input.Amount)
		}
		doc.Amount = &d
	}
	if input.DateCreated != nil {
		t := input.DateCreated.Time()
		doc.DateCreated = &t
	}
	return doc, nil
}

// requestView - результат $lookup: клиент и объект приходят массивами из 0 или 1 элемента.
type requestView struct {
	ID          int                   `bson:"_id"`
	Type        *string               `bson:"request_type,omitempty"`
	Amount      *primitive.Decimal128 `bson:"amount,omitempty"`
	DateCreated *time.Time            `bson:"date_created,omitempty"`
	Client      []clientDoc           `bson:"client"`
	Property    []propertyDoc         `bson:"property"`
}

func (v requestView) toDomain() (domain.Request, error) {
	req := domain.Request{ID: v.ID}
	if len(v.Client) > 0 {
		c := v.Client[0].toDomain()
		req.Client = &c
	}
	if len(v.Property) > 0 {
		p := v.Property[0].toDomain()
		req.Property = &p
	}
	if v.Type != nil {
		t := domain.RequestType(*v.Type)
		req.Type = &t
	}
	if v.Amount != nil {
		d, err := decimal.NewFromString(v.Amount.String())
		if err != nil {
			return domain.Request{}, fmt.Errorf("bad amount %s in document %d: %w", v.Amount.String(), v.ID, err)
		}
		req.Amount = &d
	}
	if v.DateCreated != nil {
		d := domain.DateOf(v.DateCreated.UTC())
		req.DateCreated = &d
	}
	return req, nil
}
