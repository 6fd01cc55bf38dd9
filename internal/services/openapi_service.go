package services

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIService builds the two contract documents served to QA
// harnesses. The tray and registration documents diverged upstream and
// are kept as independent documents rather than merged.
type OpenAPIService struct{}

// ClientTrayDocument describes the client listing endpoint. origin
// becomes the single server URL.
func (OpenAPIService) ClientTrayDocument(origin string) *openapi3.T {
	itemSchema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("riskLevel", openapi3.NewStringSchema().WithEnum("low", "medium", "high")).
		WithProperty("campaignStatus", openapi3.NewStringSchema().WithEnum("with campaign", "without campaign")).
		WithProperty("offerCount", openapi3.NewIntegerSchema()).
		WithProperty("clientStatus", openapi3.NewStringSchema().WithEnum("active", "inactive", "prospect"))
	itemSchema.Required = []string{"name", "riskLevel", "campaignStatus", "offerCount", "clientStatus"}

	categoriesSchema := openapi3.NewObjectSchema().
		WithProperty("active", openapi3.NewIntegerSchema()).
		WithProperty("inactive", openapi3.NewIntegerSchema()).
		WithProperty("prospect", openapi3.NewIntegerSchema()).
		WithProperty("withCampaign", openapi3.NewIntegerSchema()).
		WithProperty("withoutCampaign", openapi3.NewIntegerSchema()).
		WithProperty("prospectWithCampaign", openapi3.NewIntegerSchema())

	sectionsSchema := openapi3.NewObjectSchema().
		WithProperty("active", openapi3.NewIntegerSchema()).
		WithProperty("inactive", openapi3.NewIntegerSchema()).
		WithProperty("prospect", openapi3.NewIntegerSchema()).
		WithProperty("prospectWithCampaign", openapi3.NewIntegerSchema())

	responseSchema := openapi3.NewObjectSchema().
		WithProperty("userId", openapi3.NewStringSchema()).
		WithProperty("page", openapi3.NewIntegerSchema()).
		WithProperty("pageSize", openapi3.NewIntegerSchema()).
		WithProperty("total", openapi3.NewIntegerSchema()).
		WithProperty("categories", categoriesSchema).
		WithProperty("emptyMessagesByCategory", openapi3.NewObjectSchema().
			WithAdditionalProperties(openapi3.NewStringSchema())).
		WithProperty("sections", sectionsSchema).
		WithProperty("items", openapi3.NewArraySchema().WithItems(itemSchema)).
		WithProperty("updatedAt", openapi3.NewDateTimeSchema())
	responseSchema.Required = []string{"userId", "page", "pageSize", "total", "items", "updatedAt"}

	op := &openapi3.Operation{
		Tags:    []string{"Tray"},
		Summary: "List clients for a business analyst, paginated",
		Parameters: openapi3.Parameters{
			queryParam("userId", "Business analyst: adn1 | adn2", true,
				openapi3.NewStringSchema().WithEnum("adn1", "adn2")),
			queryParam("page", "", false, openapi3.NewIntegerSchema().WithMin(1).WithDefault(1)),
			queryParam("pageSize", "", false, openapi3.NewIntegerSchema().WithMin(1).WithDefault(10)),
			queryParam("clientStatus", "Optional filter by client status", false,
				openapi3.NewStringSchema().WithEnum("active", "inactive", "prospect")),
			queryParam("campaignActive", "Optional filter: true = with campaign; false = without", false,
				openapi3.NewBoolSchema()),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("OK").WithJSONSchema(responseSchema),
			}),
			openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Invalid parameters"),
			}),
		),
	}

	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Client Tray Mock API",
			Version:     "1.1.0",
			Description: "Mock for automated QA runs. Supports 2 analysts (adn1, adn2), pagination and categories.",
		},
		Servers: openapi3.Servers{&openapi3.Server{URL: origin, Description: "Prod"}},
		Paths:   openapi3.NewPaths(openapi3.WithPath("/api/clients", &openapi3.PathItem{Get: op})),
	}
}

// RegistrationDocument describes the registration lookup endpoint.
func (OpenAPIService) RegistrationDocument(origin string) *openapi3.T {
	registrationSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("field1", openapi3.NewStringSchema()).
		WithProperty("field2", openapi3.NewFloat64Schema()).
		WithProperty("field3", openapi3.NewBoolSchema()).
		WithProperty("field4", openapi3.NewDateTimeSchema())
	registrationSchema.Required = []string{"id"}

	op := &openapi3.Operation{
		Tags:    []string{"Registration"},
		Summary: "Fetch the mock registration record for a user",
		Parameters: openapi3.Parameters{
			queryParam("userId", "", true, openapi3.NewStringSchema()),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("OK").WithJSONSchemaRef(
					openapi3.NewSchemaRef("#/components/schemas/Registration", registrationSchema)),
			}),
			openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Missing userId parameter"),
			}),
		),
	}

	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Registration Mock API",
			Version:     "1.0.0",
			Description: "Mock registration lookup for automated QA runs.",
		},
		Servers: openapi3.Servers{&openapi3.Server{URL: origin, Description: "Prod"}},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Registration": openapi3.NewSchemaRef("", registrationSchema),
			},
		},
		Paths: openapi3.NewPaths(openapi3.WithPath("/api/registration", &openapi3.PathItem{Get: op})),
	}
}

func queryParam(name, description string, required bool, schema *openapi3.Schema) *openapi3.ParameterRef {
	p := openapi3.NewQueryParameter(name).WithRequired(required).WithSchema(schema)
	if description != "" {
		p.Description = description
	}
	return &openapi3.ParameterRef{Value: p}
}
