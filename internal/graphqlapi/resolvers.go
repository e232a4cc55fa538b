package graphqlapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"bank-account-service/internal/dto"
	"bank-account-service/internal/services"

	"github.com/graphql-go/graphql"
)

var (
	ErrSaveFailed = errors.New("Save failed")
	ErrInternal   = errors.New("internal error")

	errInvalidBody      = errors.New("request body must be a JSON object with a query")
	errInvalidVariables = errors.New("variables must be a JSON object")
)

type resolver struct {
	accountService services.AccountServiceInterface
	logger         *slog.Logger
}

func (r *resolver) getAllAccounts(p graphql.ResolveParams) (interface{}, error) {
	accounts, err := r.accountService.GetAllAccounts(p.Context)
	if err != nil {
		return nil, r.publicError(p.Context, "getAllAccounts", err)
	}
	return accounts, nil
}

func (r *resolver) getAccountByID(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArgument(p.Args)
	if err != nil {
		return nil, err
	}

	account, found, err := r.accountService.GetAccountByID(p.Context, id)
	if err != nil {
		return nil, r.publicError(p.Context, "getAccountById", err)
	}
	if !found {
		return nil, nil
	}
	return account, nil
}

func (r *resolver) addAccount(p graphql.ResolveParams) (interface{}, error) {
	account, err := r.accountService.AddAccount(p.Context, requestArgument(p.Args))
	if err != nil {
		return nil, r.publicError(p.Context, "addAccount", err)
	}
	return account, nil
}

func (r *resolver) updateAccount(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArgument(p.Args)
	if err != nil {
		return nil, err
	}

	account, found, err := r.accountService.UpdateAccount(p.Context, id, requestArgument(p.Args))
	if err != nil {
		return nil, r.publicError(p.Context, "updateAccount", err)
	}
	if !found {
		return nil, nil
	}
	return account, nil
}

func (r *resolver) deleteAccount(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArgument(p.Args)
	if err != nil {
		return nil, err
	}

	deleted, err := r.accountService.DeleteAccount(p.Context, id)
	if err != nil {
		return nil, r.publicError(p.Context, "deleteAccount", err)
	}
	return deleted, nil
}

// publicError logs err and returns the message safe to put in the errors array
func (r *resolver) publicError(ctx context.Context, field string, err error) error {
	r.logger.ErrorContext(ctx, "graphql resolver failed", "field", field, "error", err)

	if errors.Is(err, services.ErrSaveFailed) {
		return ErrSaveFailed
	}
	return ErrInternal
}

func idArgument(args map[string]interface{}) (int64, error) {
	raw, _ := args["id"].(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q", raw)
	}
	return id, nil
}

// requestArgument reads the bankAccount input. A missing input or null field becomes an empty string.
func requestArgument(args map[string]interface{}) dto.RequestAccount {
	input, _ := args["bankAccount"].(map[string]interface{})

	return dto.RequestAccount{
		Name:   stringField(input, "name"),
		Number: stringField(input, "number"),
		Owner:  stringField(input, "owner"),
	}
}

func stringField(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}
