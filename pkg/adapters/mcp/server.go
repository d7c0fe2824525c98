package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/wire"
)

// CatalogURI is the resource listing every element kind.
const CatalogURI = "flowsuite://catalog"

// Suite defines the facade methods exposed as MCP tools.
type Suite interface {
	Parse(data []byte) ([]domain.Screen, error)
	ParseElement(data []byte) (domain.Element, error)
	CreateDefault(kind domain.Kind, opts ...catalog.Option) (domain.Element, error)
	ValidateElement(ctx context.Context, el domain.Element) flowsuite.ValidationResult
	ValidateFlow(ctx context.Context, screens []domain.Screen) flowsuite.ValidationResult
	Export(ctx context.Context, screens []domain.Screen) ([]byte, error)
	Schema(ctx context.Context, title string, screens []domain.Screen) (*openapi3.T, error)
	Graph(screens []domain.Screen, overlay *flowsuite.GraphOverlay) string
}

// FlowArgs carries a flow source in JSON or YAML.
type FlowArgs struct {
	Source string `json:"source"`
}

// ElementArgs carries a single element source in JSON or YAML.
type ElementArgs struct {
	Element string `json:"element"`
}

// CreateArgs selects the kind of a new element.
type CreateArgs struct {
	Kind       string `json:"kind"`
	NextScreen string `json:"next_screen,omitempty"`
}

// KindSummary describes one catalog kind.
type KindSummary struct {
	Kind      domain.Kind       `json:"kind"`
	FormField bool              `json:"form_field"`
	Limits    []flowsuite.Limit `json:"limits"`
}

// KindList is the result of list_kinds.
type KindList struct {
	Kinds []KindSummary `json:"kinds"`
}

// Server wraps the Suite and exposes it as an MCP Server.
type Server struct {
	suite     Suite
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. A nil logger discards output.
func NewServer(suite Suite, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		suite:     suite,
		logger:    logger,
		mcpServer: server.NewMCPServer("flowsuite-mcp", flowsuite.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it
// when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: compile_flow
	s.mcpServer.AddTool(mcp.NewTool("compile_flow",
		mcp.WithDescription("Validate and compile a flow source (JSON or YAML) into the platform flow JSON."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Flow source with a screens list")),
		mcp.WithBoolean("skip_validation", mcp.Description("Compile even if validation reports errors")),
	), s.handleCompile)

	// TOOL: validate_flow
	s.mcpServer.AddTool(mcp.NewTool("validate_flow",
		mcp.WithDescription("Check a flow source against the platform's content and structural limits."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Flow source with a screens list")),
		mcp.WithOutputSchema[flowsuite.ValidationResult](),
	), mcp.NewStructuredToolHandler(s.handleValidateFlow))

	// TOOL: validate_element
	s.mcpServer.AddTool(mcp.NewTool("validate_element",
		mcp.WithDescription("Check one element against its content limits."),
		mcp.WithString("element", mcp.Required(), mcp.Description("Element object with type and id")),
		mcp.WithOutputSchema[flowsuite.ValidationResult](),
	), mcp.NewStructuredToolHandler(s.handleValidateElement))

	// TOOL: create_element
	s.mcpServer.AddTool(mcp.NewTool("create_element",
		mcp.WithDescription("Create an element of the given kind with its default attributes."),
		mcp.WithString("kind", mcp.Required(), mcp.Enum(kindNames()...), mcp.Description("Catalog kind")),
		mcp.WithString("next_screen", mcp.Description("Target screen for a Footer")),
	), mcp.NewTypedToolHandler(s.handleCreateElement))

	// TOOL: list_kinds
	s.mcpServer.AddTool(mcp.NewTool("list_kinds",
		mcp.WithDescription("List the element catalog with form-field membership and content limits."),
		mcp.WithOutputSchema[KindList](),
	), mcp.NewStructuredToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, _ struct{}) (KindList, error) {
		return listKinds(), nil
	}))

	// TOOL: flow_graph
	s.mcpServer.AddTool(mcp.NewTool("flow_graph",
		mcp.WithDescription("Render the flow's navigation graph as a Mermaid flowchart."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Flow source with a screens list")),
	), mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args FlowArgs) (*mcp.CallToolResult, error) {
		screens, err := s.suite.Parse([]byte(args.Source))
		if err != nil {
			return mcp.NewToolResultErrorFromErr("invalid flow", err), nil
		}
		return mcp.NewToolResultText(s.suite.Graph(screens, nil)), nil
	}))

	// TOOL: data_schema
	s.mcpServer.AddTool(mcp.NewTool("data_schema",
		mcp.WithDescription("Describe the flow's data-exchange endpoint as an OpenAPI document."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Flow source with a screens list")),
		mcp.WithString("title", mcp.Description("API title")),
	), s.handleSchema)
}

func (s *Server) handleCompile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	screens, err := s.suite.Parse([]byte(source))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid flow", err), nil
	}

	if !request.GetBool("skip_validation", false) {
		if report := s.suite.ValidateFlow(ctx, screens); !report.IsValid {
			body, _ := json.Marshal(report)
			return mcp.NewToolResultError(fmt.Sprintf("flow has %d validation errors: %s", len(report.Errors), body)), nil
		}
	}

	out, err := s.suite.Export(ctx, screens)
	if err != nil {
		s.logger.Error("MCP compile failed", "err", err)
		return mcp.NewToolResultErrorFromErr("compile failed", err), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleValidateFlow(ctx context.Context, _ mcp.CallToolRequest, args FlowArgs) (flowsuite.ValidationResult, error) {
	screens, err := s.suite.Parse([]byte(args.Source))
	if err != nil {
		return flowsuite.ValidationResult{}, fmt.Errorf("invalid flow: %w", err)
	}
	return s.suite.ValidateFlow(ctx, screens), nil
}

func (s *Server) handleValidateElement(ctx context.Context, _ mcp.CallToolRequest, args ElementArgs) (flowsuite.ValidationResult, error) {
	el, err := s.suite.ParseElement([]byte(args.Element))
	if err != nil {
		return flowsuite.ValidationResult{}, fmt.Errorf("invalid element: %w", err)
	}
	return s.suite.ValidateElement(ctx, el), nil
}

func (s *Server) handleCreateElement(_ context.Context, _ mcp.CallToolRequest, args CreateArgs) (*mcp.CallToolResult, error) {
	var opts []catalog.Option
	if args.NextScreen != "" {
		opts = append(opts, catalog.WithNextScreen(args.NextScreen))
	}
	el, err := s.suite.CreateDefault(domain.Kind(args.Kind), opts...)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("create failed", err), nil
	}
	attrs, err := wire.ElementMap(el)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultJSON(attrs)
}

func (s *Server) handleSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	screens, err := s.suite.Parse([]byte(source))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid flow", err), nil
	}
	spec, err := s.suite.Schema(ctx, request.GetString("title", "Flow data exchange"), screens)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("schema failed", err), nil
	}
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(body)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: flowsuite://catalog
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Element Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := json.Marshal(listKinds())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(body),
			},
		}, nil
	})
}

func listKinds() KindList {
	kinds := domain.Kinds()
	out := KindList{Kinds: make([]KindSummary, 0, len(kinds))}
	for _, k := range kinds {
		out.Kinds = append(out.Kinds, KindSummary{Kind: k, FormField: k.IsFormField(), Limits: flowsuite.Limits(k)})
	}
	return out
}

func kindNames() []string {
	kinds := domain.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
