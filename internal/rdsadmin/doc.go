// Package rdsadmin implements paramflip.ParameterStore on top of the Amazon RDS
// management API (aws-sdk-go-v2).
//
// # Pagination
//
// ListParameters drives DescribeDBParameters through the SDK paginator: the
// first request carries no marker, each following request carries the marker
// of the previous response, and the loop ends on the first response whose
// marker is nil or empty. There is no page ceiling.
//
// # Error Classification
//
// Classify labels SDK failures as transient (throttling, server faults,
// network) or permanent (missing group, access denied, validation). The label
// is informational; this package never retries.
package rdsadmin
