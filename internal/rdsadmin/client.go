package rdsadmin

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/vvka-141/paramflip/internal/logging"
	"github.com/vvka-141/paramflip/pkg/paramflip"
)

// DescribeDBParametersAPI is the listing half of the RDS client.
type DescribeDBParametersAPI interface {
	DescribeDBParameters(ctx context.Context, params *rds.DescribeDBParametersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBParametersOutput, error)
}

// ModifyDBParameterGroupAPI is the writing half of the RDS client.
type ModifyDBParameterGroupAPI interface {
	ModifyDBParameterGroup(ctx context.Context, params *rds.ModifyDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.ModifyDBParameterGroupOutput, error)
}

// API is the subset of *rds.Client used by Client.
type API interface {
	DescribeDBParametersAPI
	ModifyDBParameterGroupAPI
}

// Client implements paramflip.ParameterStore against RDS DB parameter groups.
type Client struct {
	api      API
	logger   paramflip.Logger
	pageSize int32
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithLogger sets the logger used for per-page diagnostics.
func WithLogger(l paramflip.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithPageSize sets MaxRecords on each DescribeDBParameters request.
// RDS accepts 20 to 100; zero leaves the service default (100).
func WithPageSize(n int32) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

// NewClient wraps an RDS API implementation.
func NewClient(api API, opts ...Option) *Client {
	c := &Client{
		api:    api,
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a Client from the default AWS credential chain.
// An empty region defers to AWS_REGION and the shared config files.
func NewFromConfig(ctx context.Context, region string, opts ...Option) (*Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewClient(rds.NewFromConfig(cfg), opts...), nil
}

// ListParameters returns every parameter of group in the order RDS reports them.
func (c *Client) ListParameters(ctx context.Context, group string) ([]paramflip.Parameter, error) {
	input := &rds.DescribeDBParametersInput{
		DBParameterGroupName: aws.String(group),
	}

	paginator := rds.NewDescribeDBParametersPaginator(c.api, input, func(o *rds.DescribeDBParametersPaginatorOptions) {
		o.Limit = c.pageSize
	})

	var params []paramflip.Parameter
	for page := 1; paginator.HasMorePages(); page++ {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe parameters of %q (page %d): %w: %w", group, page, paramflip.ErrAdminAPI, err)
		}
		for _, p := range out.Parameters {
			params = append(params, fromSDK(p))
		}
		c.logger.Verbose("Fetched page %d of %q: %d parameter(s), more=%t", page, group, len(out.Parameters), aws.ToString(out.Marker) != "")
	}

	return params, nil
}

// ModifyParameter sets a single parameter of group.
// An empty ApplyMethod is sent as "immediate".
func (c *Client) ModifyParameter(ctx context.Context, group string, param paramflip.Parameter) error {
	applyMethod := param.ApplyMethod
	if applyMethod == "" {
		applyMethod = paramflip.ApplyMethodImmediate
	}

	_, err := c.api.ModifyDBParameterGroup(ctx, &rds.ModifyDBParameterGroupInput{
		DBParameterGroupName: aws.String(group),
		Parameters: []types.Parameter{
			{
				ParameterName:  aws.String(param.Name),
				ParameterValue: aws.String(param.Value),
				ApplyMethod:    types.ApplyMethod(applyMethod),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to modify %s in %q: %w: %w", param.Name, group, paramflip.ErrAdminAPI, err)
	}
	return nil
}

func fromSDK(p types.Parameter) paramflip.Parameter {
	return paramflip.Parameter{
		Name:        aws.ToString(p.ParameterName),
		Value:       aws.ToString(p.ParameterValue),
		HasValue:    p.ParameterValue != nil,
		ApplyMethod: string(p.ApplyMethod),
	}
}
