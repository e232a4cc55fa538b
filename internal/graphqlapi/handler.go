package graphqlapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/labstack/echo/v4"
)

const mimeApplicationGraphQL = "application/graphql"

// Request is a GraphQL-over-HTTP request
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL queries over HTTP
type Handler struct {
	schema graphql.Schema
}

// NewHandler creates a GraphQL handler for schema
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Serve executes a query from a GET query string or a POST body
// @Summary GraphQL endpoint
// @Tags GraphQL
// @Accept json
// @Produce json
// @Success 200 {object} graphql.Result "Query result with data and errors"
// @Failure 400 {object} graphql.Result "Malformed request"
// @Router /graphql [post]
func (h *Handler) Serve(c echo.Context) error {
	req, err := parseRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if strings.TrimSpace(req.Query) == "" {
		return badRequest(c, "query is required")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}

func parseRequest(c echo.Context) (Request, error) {
	var req Request

	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, errInvalidVariables
			}
		}
		return req, nil
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, mimeApplicationGraphQL) {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return req, errInvalidBody
		}
		req.Query = string(body)
		return req, nil
	}

	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, &req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &graphql.Result{
		Errors: []gqlerrors.FormattedError{gqlerrors.NewFormattedError(message)},
	})
}
