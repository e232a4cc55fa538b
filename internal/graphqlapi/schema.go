// Package graphqlapi exposes the account service over GraphQL.
package graphqlapi

import (
	"log/slog"

	"bank-account-service/internal/services"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the account schema. Queries and mutations resolve through accountService.
func NewSchema(accountService services.AccountServiceInterface, logger *slog.Logger) (graphql.Schema, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &resolver{
		accountService: accountService,
		logger:         logger,
	}

	accountType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "ReceiveAccount",
		Description: "A stored bank account",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":   &graphql.Field{Type: graphql.String},
			"number": &graphql.Field{Type: graphql.String},
			"owner":  &graphql.Field{Type: graphql.String},
		},
	})

	requestAccountInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "RequestAccount",
		Description: "Account fields supplied by the client. The id is ignored.",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":     &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"name":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"number": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"owner":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllAccounts": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(accountType))),
				Resolve: r.getAllAccounts,
			},
			"getAccountById": &graphql.Field{
				Type:    accountType,
				Args:    idArg,
				Resolve: r.getAccountByID,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addAccount": &graphql.Field{
				Type: accountType,
				Args: graphql.FieldConfigArgument{
					"bankAccount": &graphql.ArgumentConfig{Type: requestAccountInput},
				},
				Resolve: r.addAccount,
			},
			"updateAccount": &graphql.Field{
				Type: accountType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"bankAccount": &graphql.ArgumentConfig{Type: requestAccountInput},
				},
				Resolve: r.updateAccount,
			},
			"deleteAccount": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.deleteAccount,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
