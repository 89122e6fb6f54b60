package apigateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/smithy-go"
)

const (
	exportType   = "swagger"
	exportAccept = "application/json"
	pageSize     = 500
)

// API is the subset of the API Gateway client used here.
type API interface {
	GetRestApis(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error)
	GetExport(ctx context.Context, params *apigateway.GetExportInput, optFns ...func(*apigateway.Options)) (*apigateway.GetExportOutput, error)
}

// Client looks up REST APIs and exports their Swagger description.
type Client struct {
	api API
}

// NewClient creates a client on top of an API Gateway API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// New loads the default AWS configuration for region and creates a client.
func New(ctx context.Context, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewClient(apigateway.NewFromConfig(cfg)), nil
}

// RestAPIID returns the ID of the REST API named "<stageName>-<apiName>",
// or "" if no such API exists.
func (c *Client) RestAPIID(ctx context.Context, stageName, apiName string) (string, error) {
	target := stageName + "-" + apiName

	var position *string
	for {
		out, err := c.api.GetRestApis(ctx, &apigateway.GetRestApisInput{
			Limit:    aws.Int32(pageSize),
			Position: position,
		})
		if err != nil {
			return "", fmt.Errorf("get rest apis: %w", err)
		}

		for _, api := range out.Items {
			if aws.ToString(api.Name) == target {
				return aws.ToString(api.Id), nil
			}
		}

		if aws.ToString(out.Position) == "" {
			return "", nil
		}
		position = out.Position
	}
}

// ExportSwagger exports the stage of restAPIID as Swagger JSON.
func (c *Client) ExportSwagger(ctx context.Context, restAPIID, stageName string) ([]byte, error) {
	out, err := c.api.GetExport(ctx, &apigateway.GetExportInput{
		RestApiId:  aws.String(restAPIID),
		StageName:  aws.String(stageName),
		ExportType: aws.String(exportType),
		Accepts:    aws.String(exportAccept),
	})
	if err != nil {
		return nil, fmt.Errorf("export %s/%s: %w", restAPIID, stageName, err)
	}
	return out.Body, nil
}

// IsAccessDenied reports whether err carries the AccessDeniedException code.
func (c *Client) IsAccessDenied(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "AccessDeniedException"
}
