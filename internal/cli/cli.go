// Package cli implements productctl, a command line client for the product gRPC API.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	pb "github.com/abgdnv/productstore/pkg/api/product/v1"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUsage is returned for unknown commands and malformed arguments.
var ErrUsage = errors.New("usage error")

const usage = `usage: productctl <command> [arguments]

commands:
  list                                                   list all products
  get <id>                                               show one product
  create -name N -description D -price P                 create a product, prints its id
  update <id> -name N -description D -price P            store a product under id
  delete <id>                                            delete a product
`

// Run executes the command in args against client and writes JSON results to out.
func Run(ctx context.Context, client pb.ProductServiceClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		res, err := client.ListProducts(ctx, &pb.ListProductsRequest{})
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		products := res.GetProducts()
		if products == nil {
			products = []*pb.Product{}
		}
		return writeJSON(out, products)

	case "get":
		id, err := idArg(cmd, rest)
		if err != nil {
			return err
		}
		res, err := client.GetProduct(ctx, &pb.GetProductRequest{Id: id})
		if err != nil {
			return fmt.Errorf("get product %s: %w", id, err)
		}
		return writeJSON(out, res.GetProduct())

	case "create":
		fields, err := parseFields(cmd, rest)
		if err != nil {
			return err
		}
		res, err := client.CreateProduct(ctx, &pb.CreateProductRequest{
			Name:        fields.name,
			Description: fields.description,
			Price:       fields.price,
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		return writeJSON(out, res)

	case "update":
		if len(rest) == 0 {
			return usageError("update requires a product id")
		}
		id, err := idArg(cmd, rest[:1])
		if err != nil {
			return err
		}
		fields, err := parseFields(cmd, rest[1:])
		if err != nil {
			return err
		}
		_, err = client.UpdateProduct(ctx, &pb.UpdateProductRequest{
			Id:          id,
			Name:        fields.name,
			Description: fields.description,
			Price:       fields.price,
		})
		if err != nil {
			return fmt.Errorf("update product %s: %w", id, err)
		}
		return writeJSON(out, map[string]string{"id": id})

	case "delete":
		id, err := idArg(cmd, rest)
		if err != nil {
			return err
		}
		if _, err := client.DeleteProduct(ctx, &pb.DeleteProductRequest{Id: id}); err != nil {
			return fmt.Errorf("delete product %s: %w", id, err)
		}
		return writeJSON(out, map[string]string{"id": id})

	case "help", "-h", "--help":
		_, err := io.WriteString(out, usage)
		return err

	default:
		return usageError(fmt.Sprintf("unknown command %q", cmd))
	}
}

// Usage returns the help text.
func Usage() string {
	return usage
}

type productFields struct {
	name        string
	description string
	price       string
}

func parseFields(cmd string, args []string) (productFields, error) {
	var f productFields
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.name, "name", "", "product name")
	fs.StringVar(&f.description, "description", "", "product description")
	fs.StringVar(&f.price, "price", "0", "product price, a decimal number")
	if err := fs.Parse(args); err != nil {
		return f, usageError(err.Error())
	}
	if fs.NArg() > 0 {
		return f, usageError(fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}
	price, err := decimal.NewFromString(f.price)
	if err != nil {
		return f, usageError(fmt.Sprintf("invalid price %q", f.price))
	}
	f.price = price.String()
	return f, nil
}

func idArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError(fmt.Sprintf("%s requires exactly one product id", cmd))
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return "", usageError(fmt.Sprintf("invalid product id %q", args[0]))
	}
	return id.String(), nil
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
