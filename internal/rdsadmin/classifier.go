package rdsadmin

import (
	"context"
	"errors"
	"net"

	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
)

// Class is the coarse category of an administration API failure.
type Class int

const (
	// ClassUnknown is used for errors that carry no AWS or network detail.
	ClassUnknown Class = iota
	// ClassTransient marks failures that may succeed on a later invocation.
	ClassTransient
	// ClassPermanent marks failures that need operator action.
	ClassPermanent
)

func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Classification is the result of Classify.
type Classification struct {
	Class Class
	// Code is the AWS error code, if the error carried one.
	Code string
}

// AWS error codes that indicate throttling or a temporary service condition.
var transientCodes = map[string]bool{
	"Throttling":                     true,
	"ThrottlingException":            true,
	"ThrottledException":             true,
	"RequestThrottled":               true,
	"RequestThrottledException":      true,
	"TooManyRequestsException":       true,
	"RequestLimitExceeded":           true,
	"SlowDown":                       true,
	"ServiceUnavailable":             true,
	"InternalFailure":                true,
	"InternalError":                  true,
	"RequestTimeout":                 true,
	"RequestTimeoutException":        true,
	"PriorRequestNotComplete":        true,
	"EC2ThrottledException":          true,
	"TransactionInProgressException": true,
}

// Classify inspects an error returned by Client and reports its class.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Class: ClassUnknown}
	}

	var notFound *types.DBParameterGroupNotFoundFault
	if errors.As(err, &notFound) {
		return Classification{Class: ClassPermanent, Code: notFound.ErrorCode()}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if transientCodes[code] || apiErr.ErrorFault() == smithy.FaultServer {
			return Classification{Class: ClassTransient, Code: code}
		}
		return Classification{Class: ClassPermanent, Code: code}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Classification{Class: ClassTransient}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Classification{Class: ClassTransient}
	}

	return Classification{Class: ClassUnknown}
}
