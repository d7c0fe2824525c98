// Package endpoint describes a flow's data-exchange endpoint as an OpenAPI
// document derived from the compiled data model.
package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Path is the route the platform posts screen data to.
const Path = "/data-exchange"

// Exchange actions sent by the platform runtime.
var actions = []any{"ping", "INIT", "data_exchange", "BACK"}

const (
	flowDataName = "FlowData"
	requestName  = "DataExchangeRequest"
	responseName = "DataExchangeResponse"
)

func ref(name string, value *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, value)
}

// EntrySchema maps one data model entry to its JSON schema.
func EntrySchema(entry domain.DataSchemaEntry) *openapi3.Schema {
	var s *openapi3.Schema
	switch entry.Type {
	case domain.SchemaArray:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case domain.SchemaBoolean:
		s = openapi3.NewBoolSchema()
	default:
		s = openapi3.NewStringSchema()
	}
	s.Description = entry.Description
	s.Example = entry.Example
	return s
}

// DataSchema returns the object schema of the flow's data payload.
// A nil model yields an empty object schema.
func DataSchema(data *domain.DataModel) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	if data == nil {
		return s
	}
	for p := data.Oldest(); p != nil; p = p.Next() {
		s = s.WithProperty(p.Key, EntrySchema(p.Value))
	}
	return s
}

// Document builds and validates the OpenAPI description of the flow's
// data-exchange endpoint.
func Document(ctx context.Context, title string, doc *domain.FlowDocument) (*openapi3.T, error) {
	if doc == nil {
		return nil, errors.New("nil flow document")
	}

	flowData := DataSchema(doc.Data)

	screenIDs := make([]any, 0, len(doc.Screens))
	for _, s := range doc.Screens {
		screenIDs = append(screenIDs, s.ID)
	}

	request := openapi3.NewObjectSchema().
		WithProperty("version", openapi3.NewStringSchema()).
		WithProperty("action", openapi3.NewStringSchema().WithEnum(actions...)).
		WithProperty("screen", openapi3.NewStringSchema()).
		WithPropertyRef("data", ref(flowDataName, flowData)).
		WithProperty("flow_token", openapi3.NewStringSchema()).
		WithRequired([]string{"action", "flow_token"})

	screen := openapi3.NewStringSchema()
	if len(screenIDs) > 0 {
		screen = screen.WithEnum(screenIDs...)
	}
	response := openapi3.NewObjectSchema().
		WithProperty("screen", screen).
		WithPropertyRef("data", ref(flowDataName, flowData)).
		WithRequired([]string{"screen"})

	op := openapi3.NewOperation()
	op.OperationID = "exchangeData"
	op.Summary = "Exchange screen data with the flow runtime"
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref(requestName, request)),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Next screen and its data").
				WithJSONSchemaRef(ref(responseName, response)),
		}),
	)

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{
		flowDataName: openapi3.NewSchemaRef("", flowData),
		requestName:  openapi3.NewSchemaRef("", request),
		responseName: openapi3.NewSchemaRef("", response),
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: doc.DataAPIVersion,
		},
		Paths:      openapi3.NewPaths(),
		Components: &components,
	}
	spec.AddOperation(Path, http.MethodPost, op)

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid endpoint description: %w", err)
	}
	return spec, nil
}

// CheckExamples verifies every entry's example against its own schema.
func CheckExamples(data *domain.DataModel) error {
	if data == nil {
		return nil
	}
	var errs []error
	for p := data.Oldest(); p != nil; p = p.Next() {
		if err := EntrySchema(p.Value).VisitJSON(p.Value.Example); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Key, err))
		}
	}
	return errors.Join(errs...)
}
