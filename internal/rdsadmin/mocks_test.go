package rdsadmin

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// fakePage is one scripted DescribeDBParameters response.
type fakePage struct {
	params []types.Parameter
	marker *string
	err    error
}

type fakeRDS struct {
	pages []fakePage

	describeCalls []*rds.DescribeDBParametersInput
	modifyCalls   []*rds.ModifyDBParameterGroupInput
	modifyErr     error
}

func (f *fakeRDS) DescribeDBParameters(_ context.Context, in *rds.DescribeDBParametersInput, _ ...func(*rds.Options)) (*rds.DescribeDBParametersOutput, error) {
	copied := *in
	f.describeCalls = append(f.describeCalls, &copied)
	idx := len(f.describeCalls) - 1
	if idx >= len(f.pages) {
		return nil, fmt.Errorf("unexpected DescribeDBParameters call #%d", idx+1)
	}
	page := f.pages[idx]
	if page.err != nil {
		return nil, page.err
	}
	return &rds.DescribeDBParametersOutput{Parameters: page.params, Marker: page.marker}, nil
}

func (f *fakeRDS) ModifyDBParameterGroup(_ context.Context, in *rds.ModifyDBParameterGroupInput, _ ...func(*rds.Options)) (*rds.ModifyDBParameterGroupOutput, error) {
	f.modifyCalls = append(f.modifyCalls, in)
	if f.modifyErr != nil {
		return nil, f.modifyErr
	}
	return &rds.ModifyDBParameterGroupOutput{DBParameterGroupName: in.DBParameterGroupName}, nil
}

func param(name, value string) types.Parameter {
	return types.Parameter{
		ParameterName:  aws.String(name),
		ParameterValue: aws.String(value),
		ApplyMethod:    types.ApplyMethodPendingReboot,
	}
}

func unsetParam(name string) types.Parameter {
	return types.Parameter{ParameterName: aws.String(name)}
}
