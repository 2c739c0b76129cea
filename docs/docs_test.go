package docs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type document struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths map[string]map[string]struct {
		Responses map[string]any `json:"responses"`
	} `json:"paths"`
}

func TestRegisteredDocumentIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Amazon Shop", doc.Info.Title)

	for _, path := range []string{"/", "/home", "/api/products", "/cart", "/checkout", "/register", "/login", "/logout"} {
		assert.Contains(t, doc.Paths, path)
	}

	checkout := doc.Paths["/checkout"]["get"]
	assert.Contains(t, checkout.Responses, "200")
	assert.NotContains(t, checkout.Responses, "302", "guests reach the checkout form directly")
}
