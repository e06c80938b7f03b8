package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/rds/auth"
)

// RDS IAM tokens are valid for 15 minutes.
const awsIAMTokenLifetime = 15 * time.Minute

// credentialsLoader resolves the credential chain for a region.
type credentialsLoader func(ctx context.Context, region string) (aws.CredentialsProvider, error)

// tokenBuilder signs an RDS connect token.
type tokenBuilder func(ctx context.Context, endpoint, region, user string, creds aws.CredentialsProvider, optFns ...func(*auth.BuildAuthTokenOptions)) (string, error)

func defaultCredentials(ctx context.Context, region string) (aws.CredentialsProvider, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return cfg.Credentials, nil
}

// AWSIAMTokenProvider signs RDS IAM connect tokens with the default AWS
// credential chain. The chain is resolved on first use and reused after that;
// tokens themselves are signed per call.
type AWSIAMTokenProvider struct {
	endpoint string // host:port
	region   string
	username string

	loadCredentials credentialsLoader
	buildToken      tokenBuilder

	once     sync.Once
	creds    aws.CredentialsProvider
	credsErr error
}

// NewAWSIAMTokenProvider returns a provider for username at endpoint (host:port).
func NewAWSIAMTokenProvider(endpoint, region, username string) (*AWSIAMTokenProvider, error) {
	switch {
	case endpoint == "":
		return nil, fmt.Errorf("RDS IAM auth requires endpoint (host:port)")
	case region == "":
		return nil, fmt.Errorf("RDS IAM auth requires region (set region in config or $AWS_REGION)")
	case username == "":
		return nil, fmt.Errorf("RDS IAM auth requires database username")
	}

	return &AWSIAMTokenProvider{
		endpoint:        endpoint,
		region:          region,
		username:        username,
		loadCredentials: defaultCredentials,
		buildToken:      auth.BuildAuthToken,
	}, nil
}

// GetToken signs a fresh connect token.
func (p *AWSIAMTokenProvider) GetToken(ctx context.Context) (string, time.Time, error) {
	p.once.Do(func() {
		p.creds, p.credsErr = p.loadCredentials(ctx, p.region)
	})
	if p.credsErr != nil {
		return "", time.Time{}, fmt.Errorf("failed to load AWS config: %w", p.credsErr)
	}

	issued := time.Now()
	token, err := p.buildToken(ctx, p.endpoint, p.region, p.username, p.creds)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build RDS auth token: %w", err)
	}
	return token, issued.Add(awsIAMTokenLifetime), nil
}

func (p *AWSIAMTokenProvider) String() string {
	return fmt.Sprintf("rds-iam(%s@%s, %s)", p.username, p.endpoint, p.region)
}
