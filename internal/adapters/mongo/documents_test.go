package mongo_adapter

import (
	"testing"
	"time"

	"agency-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRequestDoc_OmitsUnsetFields(t *testing.T) {
	doc, err := newRequestDoc(3, domain.RequestInput{ClientID: 1, PropertyID: 2})
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	require.Len(t, m, 3)
	require.NotContains(t, m, "amount")
	require.NotContains(t, m, "request_type")
	require.NotContains(t, m, "date_created")
}

func TestRequestView_RoundTrip(t *testing.T) {
	buy := domain.RequestTypeBuy
	amount := decimal.RequireFromString("12500000.75")
	date := domain.NewDate(2025, time.September, 15)

	doc, err := newRequestDoc(7, domain.RequestInput{
		ClientID:    1,
		PropertyID:  2,
		Type:        &buy,
		Amount:      &amount,
		DateCreated: &date,
	})
	require.NoError(t, err)

	// так выглядит документ после $lookup
	joined := bson.M{
		"_id":          doc.ID,
		"request_type": doc.Type,
		"amount":       doc.Amount,
		"date_created": doc.DateCreated,
		"client":       []clientDoc{newClientDoc(domain.Client{ID: 1, FullName: "Иванов Иван", PassportNumber: "4000 123456"})},
		"property": []propertyDoc{newPropertyDoc(domain.Property{
			ID: 2, CadastralNumber: "77:01:0004012:1234", Type: domain.PropertyTypeApartment, Purpose: domain.PropertyPurposeResidential,
		})},
	}
	raw, err := bson.Marshal(joined)
	require.NoError(t, err)

	var view requestView
	require.NoError(t, bson.Unmarshal(raw, &view))

	req, err := view.toDomain()
	require.NoError(t, err)
	require.Equal(t, 7, req.ID)
	require.True(t, req.HasType(domain.RequestTypeBuy))
	require.True(t, amount.Equal(*req.Amount))
	require.Equal(t, date, *req.DateCreated)
	require.Equal(t, "Иванов Иван", req.Client.FullName)
	require.Equal(t, domain.PropertyTypeApartment, req.Property.Type)
}

func TestRequestView_MissingRelations(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": 5, "client": bson.A{}, "property": bson.A{}})
	require.NoError(t, err)

	var view requestView
	require.NoError(t, bson.Unmarshal(raw, &view))

	req, err := view.toDomain()
	require.NoError(t, err)
	require.False(t, req.IsWellFormed())
	require.Nil(t, req.Amount)
	require.Nil(t, req.Type)
}
