package v1_test

import (
	"net/http"

	v1 "github.com/gs866812/kustia-mosque-backend/internal/controllers/v1"
	"github.com/gs866812/kustia-mosque-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPaymentInfoOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/payment-info", nil)
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestPaymentInfoEmptyBeforeFirstUpdate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payment-info", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentInfoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Error)
	assert.Equal(suite.T(), "", response.Data.Bkash)
}

func (suite *TestSuiteStandard) TestPaymentInfoUpdate() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/payment-info", v1.PaymentInfoEditable{
		Bkash:   "01712345678",
		Nagad:   "01812345678",
		Bank:    "IBBL, Kustia branch",
		Address: "Kustia Jame Masjid",
	}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Reading is public
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payment-info", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentInfoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "01712345678", response.Data.Bkash)
	assert.Equal(suite.T(), "Kustia Jame Masjid", response.Data.Address)
}

func (suite *TestSuiteStandard) TestPaymentInfoUpdateReplaces() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/payment-info", v1.PaymentInfoEditable{
		Bkash: "01712345678",
		Nagad: "01812345678",
	}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// A second update replaces all fields, omitted ones become empty
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/payment-info", v1.PaymentInfoEditable{
		Bkash: "01700000000",
	}, asModerator(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentInfoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "01700000000", response.Data.Bkash)
	assert.Equal(suite.T(), "", response.Data.Nagad)
}

func (suite *TestSuiteStandard) TestPaymentInfoUpdateUnauthorized() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/payment-info", v1.PaymentInfoEditable{
		Bkash: "01712345678",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, r.Code)
}
