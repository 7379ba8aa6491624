package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"go-checkout/models"
)

func TestDecimalCodec_ProductRoundTrip(t *testing.T) {
	reg := MongoRegistry()

	product := models.Product{
		Name:   "Course",
		Price:  decimal.RequireFromString("99.90"),
		Active: true,
	}

	raw, err := bson.MarshalWithRegistry(reg, product)
	require.NoError(t, err)

	var decoded models.Product
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &decoded))
	assert.True(t, decoded.Price.Equal(product.Price), "got %s", decoded.Price)
}

func TestDecimalCodec_OrderRoundTrip(t *testing.T) {
	reg := MongoRegistry()

	order := models.Order{
		ProductName:   "Course",
		ProductPrice:  decimal.RequireFromString("1234.56"),
		PaymentMethod: "card",
		Status:        "Paid",
	}

	raw, err := bson.MarshalWithRegistry(reg, order)
	require.NoError(t, err)

	var decoded models.Order
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &decoded))
	assert.True(t, decoded.ProductPrice.Equal(order.ProductPrice), "got %s", decoded.ProductPrice)
}

// Documents written before the codec existed stored doubles; they must
// still decode.
func TestDecimalCodec_DecodesLegacyDouble(t *testing.T) {
	reg := MongoRegistry()

	raw, err := bson.Marshal(bson.M{"name": "Course", "price": 99.90, "active": true})
	require.NoError(t, err)

	var decoded models.Product
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &decoded))
	assert.True(t, decoded.Price.Equal(decimal.NewFromFloat(99.90)), "got %s", decoded.Price)
}
