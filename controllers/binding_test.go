package controllers

import (
	"amazon-shop/models"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func formContext(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c
}

func TestBindFormReportsFieldsByFormName(t *testing.T) {
	RegisterValidators()

	var req models.CheckoutRequest
	errs := bindForm(formContext(url.Values{
		"name":         {"  "},
		"address":      {"1 Main St"},
		"payment_info": {""},
	}), &req)

	assert.Equal(t, "This field is required.", errs["name"])
	assert.Equal(t, "This field is required.", errs["payment_info"])
	assert.False(t, errs.Has("address"))
	assert.Equal(t, "1 Main St", req.Address)
}

func TestBindFormValidRegistration(t *testing.T) {
	RegisterValidators()

	var req models.RegisterRequest
	errs := bindForm(formContext(url.Values{
		"username": {"alice"},
		"password": {"pw1"},
		"email":    {"a@x.com"},
	}), &req)

	assert.Nil(t, errs)
	assert.Equal(t, models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.com"}, req)
}

func TestBindFormRejectsPaddedUsername(t *testing.T) {
	RegisterValidators()

	for _, username := range []string{"alice ", " alice", "alice\t"} {
		var reg models.RegisterRequest
		errs := bindForm(formContext(url.Values{
			"username": {username},
			"password": {"pw1"},
			"email":    {"a@x.com"},
		}), &reg)
		assert.Equal(t, "Remove spaces from the start and end.", errs["username"], "%q", username)

		var login models.LoginRequest
		errs = bindForm(formContext(url.Values{
			"username": {username},
			"password": {"pw1"},
		}), &login)
		assert.Equal(t, "Remove spaces from the start and end.", errs["username"], "%q", username)
	}

	var login models.LoginRequest
	assert.Nil(t, bindForm(formContext(url.Values{
		"username": {"alice smith"},
		"password": {"pw1"},
	}), &login))
}

func TestBindFormRejectsBadEmailAndQuantity(t *testing.T) {
	RegisterValidators()

	var reg models.RegisterRequest
	errs := bindForm(formContext(url.Values{
		"username": {"alice"},
		"password": {"pw1"},
		"email":    {"not-an-email"},
	}), &reg)
	assert.Equal(t, "Enter a valid email address.", errs["email"])

	var add models.AddToCartRequest
	errs = bindForm(formContext(url.Values{"quantity": {"1001"}}), &add)
	assert.Equal(t, "Must be at most 1000.", errs["quantity"])

	errs = bindForm(formContext(url.Values{"quantity": {"lots"}}), &add)
	assert.True(t, errs.Has("form"))
}
